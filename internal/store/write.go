package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/emogo/internal/record"
)

// Insert appends one record and returns the id assigned by the store.
// All fields are written at once; the store has no partial construction.
// Latitude and longitude are written together or both left NULL.
func (s *Store) Insert(ctx context.Context, d record.Draft) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	if err := d.Validate(); err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	var lat, lon sql.NullFloat64
	if d.Coordinates != nil {
		lat = sql.NullFloat64{Float64: d.Coordinates.Latitude, Valid: true}
		lon = sql.NullFloat64{Float64: d.Coordinates.Longitude, Valid: true}
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO records (date, mood, latitude, longitude, placeName, videoUri)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		d.Date,
		nullString(d.Mood),
		lat,
		lon,
		nullString(d.PlaceName),
		nullString(d.VideoURI),
	)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert record: last insert id: %w", err)
	}

	s.logger.Debug("record inserted", "id", id)
	return id, nil
}

// Delete removes the record with the given id. Deleting an id that does not
// exist succeeds without reporting that nothing was removed.
//
// Only the row is removed; any clip the record references is left to the caller.
func (s *Store) Delete(ctx context.Context, id int64) error {
	db, err := s.conn()
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}

	s.logger.Debug("record deleted", "id", id)
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
