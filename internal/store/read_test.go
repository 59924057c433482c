package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAll_Empty(t *testing.T) {
	s := createTestStore(t)

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestListAll_OrderedByDateDescending(t *testing.T) {
	s := createTestStore(t)

	for _, date := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		mustInsert(t, s, createTestDraft(date, "m"))
	}

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)

	dates := make([]string, len(records))
	for i, r := range records {
		dates[i] = r.Date
	}
	assert.Equal(t, []string{"2024-03-01", "2024-02-01", "2024-01-01"}, dates)
}

func TestListAll_TimestampsOrdering(t *testing.T) {
	s := createTestStore(t)

	mustInsert(t, s, createTestDraft("2024-06-01T08:00:00.000Z", "morning"))
	mustInsert(t, s, createTestDraft("2024-06-01T20:00:00.000Z", "evening"))
	mustInsert(t, s, createTestDraft("2024-05-31T23:59:59.999Z", "night before"))

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "evening", *records[0].Mood)
	assert.Equal(t, "morning", *records[1].Mood)
	assert.Equal(t, "night before", *records[2].Mood)
}

func TestListAll_PartialCoordinatesDropped(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	// Written outside Insert, as an older client could have.
	_, err := s.db.Exec(`INSERT INTO records (date, latitude) VALUES ('2024-01-01', 12.5)`)
	require.NoError(t, err)

	records, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Coordinates)
}

func TestListAll_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	mustInsert(t, s, createTestDraft("2024-01-01", "original"))

	first, err := s.ListAll(ctx)
	require.NoError(t, err)
	*first[0].Mood = "mutated"

	second, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", *second[0].Mood)
}
