package record

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxMoodLength is the maximum mood length in runes.
const MaxMoodLength = 200

var (
	// ErrEmptyMood is returned when a mood is blank after trimming.
	ErrEmptyMood = errors.New("mood is empty")
	// ErrMoodTooLong is returned when a mood exceeds MaxMoodLength runes.
	ErrMoodTooLong = errors.New("mood is too long")
)

// NormalizeMood returns the NFC form of s with surrounding whitespace removed.
func NormalizeMood(s string) (string, error) {
	mood := strings.TrimSpace(norm.NFC.String(s))
	if mood == "" {
		return "", ErrEmptyMood
	}
	if n := utf8.RuneCountInString(mood); n > MaxMoodLength {
		return "", fmt.Errorf("%w: %d characters, limit is %d", ErrMoodTooLong, n, MaxMoodLength)
	}
	return mood, nil
}
