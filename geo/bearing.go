package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const degenerateBearing = 1e-9

// Bearing returns the planar bearing from the first to the last point of a
// line, in degrees clockwise from north within [0, 360). Intermediate
// points are ignored. Lines with fewer than two points have no bearing.
func Bearing(line orb.LineString) (float64, bool) {
	if len(line) < 2 {
		return 0, false
	}

	start := line[0]
	end := line[len(line)-1]
	dLon := end.Lon() - start.Lon()
	dLat := end.Lat() - start.Lat()

	if math.Abs(dLon) < degenerateBearing && math.Abs(dLat) < degenerateBearing {
		return 0, true
	}

	switch {
	case dLon == 0:
		if dLat > 0 {
			return 0, true
		}
		return 180, true
	case dLat == 0:
		if dLon > 0 {
			return 90, true
		}
		return 270, true
	}

	angle := toDegrees(math.Atan(dLon / dLat))
	if dLat < 0 {
		angle += 180
	} else if dLon < 0 {
		angle += 360
	}
	return math.Mod(angle, 360), true
}

// AngleBetween returns the clockwise turn from the bearing of l1 to the
// bearing of l2, normalized into [0, 360).
func (m *Measure) AngleBetween(l1, l2 orb.LineString) (float64, bool) {
	b1, ok := m.bearing(l1)
	if !ok {
		return 0, false
	}
	b2, ok := m.bearing(l2)
	if !ok {
		return 0, false
	}

	angle := b2 - b1
	if angle < 0 {
		angle += 360
	}
	return math.Mod(angle, 360), true
}

func (m *Measure) bearing(line orb.LineString) (float64, bool) {
	b, ok := Bearing(line)
	if ok && b == 0 && m != nil && m.ZeroBearingUndefined {
		return 0, false
	}
	return b, ok
}
