package record

import (
	"errors"
	"time"
)

// DateLayout is the ISO-8601 form used for Record.Date (UTC, millisecond precision).
const DateLayout = "2006-01-02T15:04:05.000Z"

// ErrDateRequired is returned when a draft has no date.
var ErrDateRequired = errors.New("record date is required")

// Kind distinguishes mood-only entries from vlog entries.
type Kind int

const (
	// KindMoodOnly is an entry without a video clip.
	KindMoodOnly Kind = iota
	// KindVlog is an entry with a video clip.
	KindVlog
)

func (k Kind) String() string {
	switch k {
	case KindMoodOnly:
		return "mood"
	case KindVlog:
		return "vlog"
	default:
		return "unknown"
	}
}

// Coordinates is a position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Draft holds the caller-supplied fields of a new record.
type Draft struct {
	Date        string
	Mood        *string
	Coordinates *Coordinates
	PlaceName   *string
	VideoURI    *string
}

// Validate checks the fields the store requires.
func (d Draft) Validate() error {
	if d.Date == "" {
		return ErrDateRequired
	}
	return nil
}

// Record is one stored journal entry. Records are values; the store never
// hands out shared mutable instances.
type Record struct {
	ID          int64
	Date        string
	Mood        *string
	Coordinates *Coordinates
	PlaceName   *string
	VideoURI    *string
}

// Kind reports whether r is a mood-only or a vlog entry.
func (r Record) Kind() Kind {
	if r.VideoURI != nil {
		return KindVlog
	}
	return KindMoodOnly
}

// Video returns the clip path of a vlog entry.
func (r Record) Video() (string, bool) {
	if r.VideoURI == nil {
		return "", false
	}
	return *r.VideoURI, true
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// String returns a pointer to s, for filling optional fields.
func String(s string) *string {
	return &s
}

// StringOrNil returns nil for an empty string and a pointer to s otherwise.
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
