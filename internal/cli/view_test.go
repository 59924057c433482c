package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/emogo/internal/record"
)

func TestFormatRecord(t *testing.T) {
	tests := []struct {
		name string
		rec  record.Record
		want string
	}{
		{
			name: "mood only",
			rec:  record.Record{ID: 1, Date: "2024-01-01T07:15:00.000Z", Mood: record.String("tired")},
			want: "#1 mood 2024-01-01T07:15:00.000Z\n  mood:  tired",
		},
		{
			name: "vlog with place",
			rec: record.Record{
				ID:          3,
				Date:        "2024-03-01T09:30:00.000Z",
				Coordinates: &record.Coordinates{Latitude: 25.033, Longitude: 121.5654},
				PlaceName:   record.String("Taipei 101, Taipei, Taiwan"),
				VideoURI:    record.String("/media/vlog-3.mov"),
			},
			want: "#3 vlog 2024-03-01T09:30:00.000Z\n  place: Taipei 101, Taipei, Taiwan\n  video: /media/vlog-3.mov",
		},
		{
			name: "coordinates only",
			rec: record.Record{
				ID:          2,
				Date:        "2024-02-01T18:00:00.000Z",
				Coordinates: &record.Coordinates{Latitude: -33.8688, Longitude: 151.2093},
			},
			want: "#2 mood 2024-02-01T18:00:00.000Z\n  place: -33.8688, 151.2093",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRecord(tt.rec))
		})
	}
}

func TestFormatRecords_CountHeader(t *testing.T) {
	one := record.Record{ID: 1, Date: "2024-01-01T07:15:00.000Z", Mood: record.String("tired")}
	two := record.Record{ID: 2, Date: "2024-01-02T07:15:00.000Z", Mood: record.String("fine")}

	assert.Equal(t, "No entries yet.", formatRecords(nil))
	assert.Equal(t, "1 Record\n"+formatRecord(one), formatRecords([]record.Record{one}))
	assert.Equal(t,
		"2 Records\n"+formatRecord(two)+"\n"+formatRecord(one),
		formatRecords([]record.Record{two, one}))
}

func TestRecordView_OmitsAbsentFields(t *testing.T) {
	v := newRecordView(record.Record{ID: 5, Date: "2024-01-01"})
	assert.Equal(t, "mood", v.Kind)
	assert.Nil(t, v.Latitude)
	assert.Nil(t, v.Longitude)
}
