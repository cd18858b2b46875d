package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	p := Point{Lat: 37.7749, Lon: -122.4194}
	assert.InDelta(t, 0, DistanceKm(p, p), 1e-9)
}

func TestDistanceKm_KnownPairs(t *testing.T) {
	sf := Point{Lat: 37.7749, Lon: -122.4194}
	la := Point{Lat: 34.0522, Lon: -118.2437}
	nyc := Point{Lat: 40.7128, Lon: -74.0060}

	// SF to LA is roughly 560 km, SF to NYC roughly 4130 km.
	assert.InDelta(t, 560, DistanceKm(sf, la), 20)
	assert.InDelta(t, 4130, DistanceKm(sf, nyc), 50)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := Point{Lat: 51.5074, Lon: -0.1278}
	b := Point{Lat: 48.8566, Lon: 2.3522}
	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestOffsetHours_SameZone(t *testing.T) {
	off, err := OffsetHours("America/New_York", "America/New_York")
	require.NoError(t, err)
	assert.InDelta(t, 0, off, 1e-9)
}

func TestOffsetHours_Symmetric(t *testing.T) {
	a, err := OffsetHours("America/New_York", "Europe/London")
	require.NoError(t, err)
	b, err := OffsetHours("Europe/London", "America/New_York")
	require.NoError(t, err)
	assert.InDelta(t, a, b, 1e-9)
	assert.Greater(t, a, 0.0)
}

func TestOffsetHours_UnknownZone(t *testing.T) {
	_, err := OffsetHours("Not/AZone", "UTC")
	assert.Error(t, err)
}
