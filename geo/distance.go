package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// Distance returns the great-circle distance between two points in meters,
// rounded to 4 decimal places.
func (m *Measure) Distance(p1, p2 orb.Point) float64 {
	lat1 := toRadians(p1.Lat())
	lat2 := toRadians(p2.Lat())
	dLat := lat2 - lat1
	dLon := toRadians(p2.Lon() - p1.Lon())

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)

	// Rounding can push near-antipodal inputs just past 1.
	h := math.Max(-1, math.Min(1, math.Sqrt(a)))
	s := 2 * math.Asin(h) * m.radius()
	return math.Round(s*10000) / 10000
}

// IsSamePoint reports whether two points lie within SamePointDistance.
func (m *Measure) IsSamePoint(p1, p2 orb.Point) bool {
	return m.Distance(p1, p2) <= m.tolerance()
}

// LineLength sums the segment distances of a line.
func (m *Measure) LineLength(line orb.LineString) float64 {
	total := 0.0
	for i := 1; i < len(line); i++ {
		total += m.Distance(line[i-1], line[i])
	}
	return total
}
