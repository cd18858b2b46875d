// Package geo resolves human-readable locations to coordinates and
// timezones, and measures the distance between them. Geocoding goes through
// OpenStreetMap Nominatim; timezone lookup is offline via an embedded
// timezone-boundary index.
package geo

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	geocode "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
	"github.com/ringsaturn/tzf"
)

// Point is a geographic coordinate pair.
type Point struct {
	Lat float64
	Lon float64
}

// Resolver turns location strings into coordinates. Implementations must
// return (nil, nil) for locations they cannot resolve, reserving errors for
// transport failures.
type Resolver interface {
	Resolve(ctx context.Context, location string) (*Point, error)
}

// TimezoneResolver maps a coordinate to an IANA timezone name.
type TimezoneResolver interface {
	TimezoneAt(p Point) (string, error)
}

// NominatimResolver geocodes through the public Nominatim endpoint.
type NominatimResolver struct {
	geocoder geocode.Geocoder
}

// NewNominatimResolver returns a resolver backed by OpenStreetMap Nominatim.
func NewNominatimResolver() *NominatimResolver {
	return &NominatimResolver{geocoder: openstreetmap.Geocoder()}
}

// Resolve geocodes a location string. Unresolvable locations return
// (nil, nil) so callers can fall back to text similarity.
func (r *NominatimResolver) Resolve(ctx context.Context, location string) (*Point, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loc, err := r.geocoder.Geocode(location)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", location, err)
	}
	if loc == nil {
		return nil, nil
	}
	return &Point{Lat: loc.Lat, Lon: loc.Lng}, nil
}

// TzfResolver resolves timezones from the embedded tzf boundary index,
// needing no network access.
type TzfResolver struct {
	finder tzf.F
}

// NewTzfResolver builds the default tzf finder. The finder is expensive to
// construct; build once and share.
func NewTzfResolver() (*TzfResolver, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to build timezone finder: %w", err)
	}
	return &TzfResolver{finder: finder}, nil
}

// TimezoneAt returns the IANA timezone name at a coordinate.
func (r *TzfResolver) TimezoneAt(p Point) (string, error) {
	name := r.finder.GetTimezoneName(p.Lon, p.Lat)
	if name == "" {
		return "", fmt.Errorf("no timezone found at %.4f,%.4f", p.Lat, p.Lon)
	}
	return name, nil
}

const earthRadiusKm = 6371.0

// DistanceKm computes the great-circle distance between two points using the
// haversine formula.
func DistanceKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// OffsetHours returns the absolute difference, in hours, between the current
// UTC offsets of two IANA timezones.
func OffsetHours(tz1, tz2 string) (float64, error) {
	loc1, err := time.LoadLocation(tz1)
	if err != nil {
		return 0, fmt.Errorf("failed to load timezone %q: %w", tz1, err)
	}
	loc2, err := time.LoadLocation(tz2)
	if err != nil {
		return 0, fmt.Errorf("failed to load timezone %q: %w", tz2, err)
	}

	now := time.Now()
	_, off1 := now.In(loc1).Zone()
	_, off2 := now.In(loc2).Zone()
	return math.Abs(float64(off1-off2)) / 3600, nil
}
