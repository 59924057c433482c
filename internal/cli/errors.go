package cli

import (
	"errors"

	"github.com/roach88/emogo/internal/export"
	"github.com/roach88/emogo/internal/journal"
	"github.com/roach88/emogo/internal/record"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeConfig      = "E002" // Config file unreadable or invalid
	ErrCodeStore       = "E003" // Database open or query failed
	ErrCodeClip        = "E004" // Clip could not be imported
	ErrCodeWriteFailed = "E005" // Export file write error

	// Input errors
	ErrCodeEmptyMood     = "E101" // Mood missing
	ErrCodeMoodTooLong   = "E102" // Mood over the length limit
	ErrCodeBadLocation   = "E103" // Only one of --lat/--lon given, or out of range
	ErrCodeBadID         = "E104" // Record id not a positive integer
	ErrCodeNotFound      = "E105" // No record with that id
	ErrCodeNothingToSave = "E106" // Nothing to export
)

// classify maps a journal error to an error code and exit code.
func classify(err error, fallback string) (code string, exit int) {
	switch {
	case errors.Is(err, record.ErrEmptyMood):
		return ErrCodeEmptyMood, ExitFailure
	case errors.Is(err, record.ErrMoodTooLong):
		return ErrCodeMoodTooLong, ExitFailure
	case errors.Is(err, journal.ErrNotFound):
		return ErrCodeNotFound, ExitFailure
	case errors.Is(err, export.ErrNothingToExport):
		return ErrCodeNothingToSave, ExitFailure
	default:
		return fallback, ExitCommandError
	}
}
