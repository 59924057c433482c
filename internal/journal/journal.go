// Package journal implements the user-facing flows of emogo on top of the
// record store: saving mood and vlog entries with an optional geotag,
// browsing and deleting history, and exporting it.
package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/roach88/emogo/internal/export"
	"github.com/roach88/emogo/internal/locate"
	"github.com/roach88/emogo/internal/record"
)

// Recorder is the record store as seen by the journal.
type Recorder interface {
	Insert(ctx context.Context, d record.Draft) (int64, error)
	ListAll(ctx context.Context) ([]record.Record, error)
	Delete(ctx context.Context, id int64) error
}

// Clips stores vlog clips on behalf of the journal.
type Clips interface {
	Import(src string) (string, error)
	Remove(path string) error
}

// ErrNotFound is returned by Remove when no record has the given id.
var ErrNotFound = errors.New("record not found")

// Service runs journal flows against a Recorder.
type Service struct {
	records  Recorder
	clips    Clips
	locator  locate.Locator
	geocoder locate.Geocoder
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLocator sets the position source. Without one, entries are not geotagged.
func WithLocator(l locate.Locator) Option {
	return func(s *Service) { s.locator = l }
}

// WithGeocoder sets the reverse geocoder used for place names.
func WithGeocoder(g locate.Geocoder) Option {
	return func(s *Service) { s.geocoder = g }
}

// WithClock overrides the time source used for entry dates (for testing).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService returns a Service storing rows in records and clips in clips.
func NewService(records Recorder, clips Clips, opts ...Option) *Service {
	s := &Service{
		records: records,
		clips:   clips,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveMood stores a mood-only entry. The mood is required.
func (s *Service) SaveMood(ctx context.Context, mood string) (record.Record, error) {
	normalized, err := record.NormalizeMood(mood)
	if err != nil {
		return record.Record{}, fmt.Errorf("save mood: %w", err)
	}

	draft := record.Draft{
		Date: record.FormatDate(s.now()),
		Mood: record.String(normalized),
	}
	s.geotag(ctx, &draft)

	return s.insert(ctx, draft)
}

// SaveVlog copies clip into the library and stores a vlog entry pointing at
// the copy. The mood is optional for vlogs.
//
// Copying the clip and inserting the row are not atomic: if the insert fails,
// the copied clip stays in the library.
func (s *Service) SaveVlog(ctx context.Context, mood, clip string) (record.Record, error) {
	var moodPtr *string
	if normalized, err := record.NormalizeMood(mood); err == nil {
		moodPtr = record.String(normalized)
	} else if !errors.Is(err, record.ErrEmptyMood) {
		return record.Record{}, fmt.Errorf("save vlog: %w", err)
	}

	date := record.FormatDate(s.now())

	draft := record.Draft{Date: date, Mood: moodPtr}
	s.geotag(ctx, &draft)

	path, err := s.clips.Import(clip)
	if err != nil {
		return record.Record{}, fmt.Errorf("save vlog: %w", err)
	}
	draft.VideoURI = record.String(path)

	rec, err := s.insert(ctx, draft)
	if err != nil {
		s.logger.Warn("clip left without a record", "clip", path, "error", err)
		return record.Record{}, err
	}
	return rec, nil
}

// History returns every entry, newest first.
func (s *Service) History(ctx context.Context) ([]record.Record, error) {
	return s.records.ListAll(ctx)
}

// Remove deletes the entry with the given id and, for vlogs, its clip.
// A clip that cannot be removed is logged and does not fail the call.
func (s *Service) Remove(ctx context.Context, id int64) (record.Record, error) {
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return record.Record{}, fmt.Errorf("remove record %d: %w", id, err)
	}

	var (
		target record.Record
		found  bool
	)
	for _, r := range records {
		if r.ID == id {
			target, found = r, true
			break
		}
	}
	if !found {
		return record.Record{}, fmt.Errorf("remove record %d: %w", id, ErrNotFound)
	}

	if err := s.records.Delete(ctx, id); err != nil {
		return record.Record{}, err
	}

	if path, ok := target.Video(); ok {
		if err := s.clips.Remove(path); err != nil {
			s.logger.Warn("could not delete clip", "id", id, "clip", path, "error", err)
		}
	}

	s.logger.Debug("record removed", "id", id, "kind", target.Kind())
	return target, nil
}

// Export writes the whole history to dir and returns the file path.
func (s *Service) Export(ctx context.Context, dir string, format export.Format) (string, error) {
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	path, err := export.WriteFile(dir, s.now(), records, format)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	s.logger.Debug("journal exported", "path", path, "records", len(records))
	return path, nil
}

func (s *Service) insert(ctx context.Context, d record.Draft) (record.Record, error) {
	id, err := s.records.Insert(ctx, d)
	if err != nil {
		return record.Record{}, err
	}
	return record.Record{
		ID:          id,
		Date:        d.Date,
		Mood:        d.Mood,
		Coordinates: d.Coordinates,
		PlaceName:   d.PlaceName,
		VideoURI:    d.VideoURI,
	}, nil
}

// geotag fills in coordinates and place name when they can be obtained.
// Location and reverse geocoding fail independently; neither failure stops
// the entry from being saved.
func (s *Service) geotag(ctx context.Context, d *record.Draft) {
	if s.locator == nil {
		return
	}

	coords, err := s.locator.Locate(ctx)
	if err != nil {
		if errors.Is(err, locate.ErrPermissionDenied) {
			s.logger.Debug("location permission denied")
		} else {
			s.logger.Warn("location unavailable", "error", err)
		}
		return
	}
	d.Coordinates = &coords

	if s.geocoder == nil {
		return
	}

	addrs, err := s.geocoder.Reverse(ctx, coords)
	if err != nil {
		s.logger.Warn("reverse geocoding failed", "error", err)
		return
	}
	if len(addrs) > 0 {
		d.PlaceName = record.StringOrNil(locate.PlaceName(addrs[0]))
	}
}
