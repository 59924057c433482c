// Package locate defines the location collaborators used when a journal entry
// is captured: a Locator for the current position and a Geocoder that turns a
// position into a human-readable place label.
package locate

import (
	"context"
	"errors"
	"strings"

	"github.com/roach88/emogo/internal/record"
)

// ErrPermissionDenied is returned by a Locator when location access was refused.
var ErrPermissionDenied = errors.New("location permission denied")

// Locator returns the current position.
type Locator interface {
	Locate(ctx context.Context) (record.Coordinates, error)
}

// Geocoder resolves a position into candidate addresses, best match first.
type Geocoder interface {
	Reverse(ctx context.Context, c record.Coordinates) ([]Address, error)
}

// Address is a reverse-geocoded address. Any field may be empty.
type Address struct {
	Name      string
	City      string
	Subregion string
	Region    string
	Country   string
}

// PlaceName joins the populated parts of a into a label such as
// "Taipei 101, Taipei, Taiwan". City falls back to Subregion.
func PlaceName(a Address) string {
	city := a.City
	if city == "" {
		city = a.Subregion
	}

	var parts []string
	for _, p := range []string{a.Name, city, a.Region, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Fixed is a Locator that always reports the same position.
type Fixed record.Coordinates

// Locate implements Locator.
func (f Fixed) Locate(context.Context) (record.Coordinates, error) {
	return record.Coordinates(f), nil
}

// Denied is a Locator that reports a refused permission.
type Denied struct{}

// Locate implements Locator.
func (Denied) Locate(context.Context) (record.Coordinates, error) {
	return record.Coordinates{}, ErrPermissionDenied
}

// StaticGeocoder is a Geocoder that resolves every position to the same label.
// An empty label resolves to no addresses.
type StaticGeocoder string

// Reverse implements Geocoder.
func (g StaticGeocoder) Reverse(context.Context, record.Coordinates) ([]Address, error) {
	if g == "" {
		return nil, nil
	}
	return []Address{{Name: string(g)}}, nil
}
