// Package geo holds the geometry primitives used to build road topologies:
// spherical distances, planar bearings, nearest points and line splitting.
//
// Coordinates are orb points in [lon, lat] degree order. Every tolerance
// lives on a Measure so independent builds can use different settings.
package geo

import (
	"math"

	"github.com/golang/geo/s1"
)

const (
	// EarthRadius is the sphere radius used for haversine distances, in meters.
	EarthRadius = 6378137.0

	// SamePointDistance is the default coincidence tolerance, in meters.
	SamePointDistance = 0.01

	// ZeroThreshold is the default bounding box pad, in degrees.
	ZeroThreshold = 1e-6

	// distanceUnit is the precision Distance rounds to (4 decimals), in meters.
	distanceUnit = 1e-4
)

// Measure carries the constants for distance and coincidence checks.
type Measure struct {
	EarthRadius       float64
	SamePointDistance float64
	ZeroThreshold     float64

	// ZeroBearingUndefined makes a bearing of exactly 0 count as
	// undefined in AngleBetween. Older tooling treated it that way.
	ZeroBearingUndefined bool
}

func DefaultMeasure() *Measure {
	return &Measure{
		EarthRadius:       EarthRadius,
		SamePointDistance: SamePointDistance,
		ZeroThreshold:     ZeroThreshold,
	}
}

func (m *Measure) radius() float64 {
	if m == nil || m.EarthRadius <= 0 {
		return EarthRadius
	}
	return m.EarthRadius
}

func (m *Measure) tolerance() float64 {
	if m == nil {
		return SamePointDistance
	}
	return m.SamePointDistance
}

// PadDegrees converts a distance in meters into the longitude and latitude
// deltas that cover it at the given latitude.
func (m *Measure) PadDegrees(meters, lat float64) (float64, float64) {
	dLat := toDegrees(meters / m.radius())
	c := math.Cos(toRadians(lat))
	if c < 1e-12 {
		return 360, dLat
	}
	return dLat / c, dLat
}

// SamePointPad returns the longitude and latitude deltas around lat that
// cover every point IsSamePoint can accept. Distances are rounded, so the
// pad reaches one rounding unit past the tolerance.
func (m *Measure) SamePointPad(lat float64) (float64, float64) {
	return m.PadDegrees(m.tolerance()+distanceUnit, lat)
}

func toRadians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

func toDegrees(rad float64) float64 {
	return (s1.Angle(rad) * s1.Radian).Degrees()
}
