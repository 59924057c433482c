// Package record defines the journal entry stored by emogo.
//
// A Record is either a mood-only entry or a vlog entry. Both share one shape and
// one table; the kind is derived from whether a video path is present:
//
//   - KindMoodOnly: VideoURI is nil
//   - KindVlog: VideoURI holds the path of the copied clip
//
// Coordinates are carried as a single optional value so that latitude and
// longitude are always present or absent together.
package record
