package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/emogo/internal/record"
)

// ListAll returns every stored record ordered by date, most recent first.
// Records sharing a date have no defined relative order.
func (s *Store) ListAll(ctx context.Context) ([]record.Record, error) {
	db, err := s.conn()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, date, mood, latitude, longitude, placeName, videoUri
		FROM records
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := []record.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list records: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}

// scanRecord reads one row from SELECT id, date, mood, latitude, longitude,
// placeName, videoUri.
func scanRecord(rows *sql.Rows) (record.Record, error) {
	var (
		rec       record.Record
		mood      sql.NullString
		lat, lon  sql.NullFloat64
		placeName sql.NullString
		videoURI  sql.NullString
	)

	if err := rows.Scan(&rec.ID, &rec.Date, &mood, &lat, &lon, &placeName, &videoURI); err != nil {
		return record.Record{}, fmt.Errorf("scan record: %w", err)
	}

	rec.Mood = stringPtr(mood)
	rec.PlaceName = stringPtr(placeName)
	rec.VideoURI = stringPtr(videoURI)

	// A row with only one coordinate column set carries no usable position.
	if lat.Valid && lon.Valid {
		rec.Coordinates = &record.Coordinates{Latitude: lat.Float64, Longitude: lon.Float64}
	}

	return rec, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
