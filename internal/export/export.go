// Package export serializes the whole journal to a portable file that can be
// handed to a share surface.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/emogo/internal/record"
)

// ErrNothingToExport is returned when the journal holds no records.
var ErrNothingToExport = errors.New("there are no records to export")

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML}

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q: must be one of %v", s, Formats)
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// MIMEType returns the media type a share surface should be given.
func (f Format) MIMEType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	default:
		return "application/json"
	}
}

// entry mirrors the records table so exports keep the stored column names.
type entry struct {
	ID        int64    `json:"id" yaml:"id"`
	Date      string   `json:"date" yaml:"date"`
	Mood      *string  `json:"mood" yaml:"mood"`
	Latitude  *float64 `json:"latitude" yaml:"latitude"`
	Longitude *float64 `json:"longitude" yaml:"longitude"`
	PlaceName *string  `json:"placeName" yaml:"placeName"`
	VideoURI  *string  `json:"videoUri" yaml:"videoUri"`
}

func toEntries(records []record.Record) []entry {
	entries := make([]entry, len(records))
	for i, r := range records {
		e := entry{
			ID:        r.ID,
			Date:      r.Date,
			Mood:      r.Mood,
			PlaceName: r.PlaceName,
			VideoURI:  r.VideoURI,
		}
		if r.Coordinates != nil {
			lat, lon := r.Coordinates.Latitude, r.Coordinates.Longitude
			e.Latitude, e.Longitude = &lat, &lon
		}
		entries[i] = e
	}
	return entries
}

// Encode writes records to w in the given format. Records are written in the
// order given; absent fields are written as null.
func Encode(w io.Writer, records []record.Record, format Format) error {
	entries := toEntries(records)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	return nil
}

// FileName returns the export file name for the UTC day of now, for example
// "emogo_export_2024-03-01.json".
func FileName(now time.Time, format Format) string {
	return "emogo_export_" + now.UTC().Format("2006-01-02") + format.Ext()
}

// WriteFile encodes records into dir/FileName(now, format), replacing any
// export written earlier the same day, and returns the file path.
func WriteFile(dir string, now time.Time, records []record.Record, format Format) (string, error) {
	if len(records) == 0 {
		return "", ErrNothingToExport
	}

	var buf bytes.Buffer
	if err := Encode(&buf, records, format); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(dir, FileName(now, format))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	return path, nil
}
