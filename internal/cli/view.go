package cli

import (
	"fmt"
	"strings"

	"github.com/roach88/emogo/internal/record"
)

// recordView is the JSON shape of a record in CLI output.
type recordView struct {
	ID        int64    `json:"id"`
	Kind      string   `json:"kind"`
	Date      string   `json:"date"`
	Mood      *string  `json:"mood,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	PlaceName *string  `json:"placeName,omitempty"`
	VideoURI  *string  `json:"videoUri,omitempty"`
}

func newRecordView(r record.Record) recordView {
	v := recordView{
		ID:        r.ID,
		Kind:      r.Kind().String(),
		Date:      r.Date,
		Mood:      r.Mood,
		PlaceName: r.PlaceName,
		VideoURI:  r.VideoURI,
	}
	if r.Coordinates != nil {
		lat, lon := r.Coordinates.Latitude, r.Coordinates.Longitude
		v.Latitude, v.Longitude = &lat, &lon
	}
	return v
}

func newRecordViews(records []record.Record) []recordView {
	views := make([]recordView, len(records))
	for i, r := range records {
		views[i] = newRecordView(r)
	}
	return views
}

// formatRecord renders r as a short multi-line block:
//
//	#3 vlog 2024-03-01T09:30:00.000Z
//	  mood:  hopeful
//	  place: Taipei 101, Taipei, Taiwan
//	  video: /home/me/.emogo/media/vlog-....mov
func formatRecord(r record.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s %s", r.ID, r.Kind(), r.Date)

	if r.Mood != nil {
		fmt.Fprintf(&b, "\n  mood:  %s", *r.Mood)
	}
	switch {
	case r.PlaceName != nil:
		fmt.Fprintf(&b, "\n  place: %s", *r.PlaceName)
	case r.Coordinates != nil:
		fmt.Fprintf(&b, "\n  place: %.4f, %.4f", r.Coordinates.Latitude, r.Coordinates.Longitude)
	}
	if path, ok := r.Video(); ok {
		fmt.Fprintf(&b, "\n  video: %s", path)
	}
	return b.String()
}

func formatRecords(records []record.Record) string {
	if len(records) == 0 {
		return "No entries yet."
	}
	header := fmt.Sprintf("%d Record", len(records))
	if len(records) != 1 {
		header += "s"
	}
	blocks := make([]string, 0, len(records)+1)
	blocks = append(blocks, header)
	for _, r := range records {
		blocks = append(blocks, formatRecord(r))
	}
	return strings.Join(blocks, "\n")
}
