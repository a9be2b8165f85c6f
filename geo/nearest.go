package geo

import (
	"github.com/paulmach/orb"
)

// NearestPointOnSegment projects p onto the segment s-e in degree space,
// clamping the projection to the segment. A segment shorter than
// SamePointDistance collapses to s.
func (m *Measure) NearestPointOnSegment(p, s, e orb.Point) orb.Point {
	if m.IsSamePoint(s, e) {
		return s
	}
	if m.IsSamePoint(p, s) {
		return s
	}
	if m.IsSamePoint(p, e) {
		return e
	}

	dx := e.Lon() - s.Lon()
	dy := e.Lat() - s.Lat()
	length2 := dx*dx + dy*dy
	if length2 == 0 {
		return s
	}

	r := ((p.Lon()-s.Lon())*dx + (p.Lat()-s.Lat())*dy) / length2
	switch {
	case r <= 0:
		return s
	case r >= 1:
		return e
	}
	return orb.Point{s.Lon() + r*dx, s.Lat() + r*dy}
}

// NearestPointOnLine returns the point of line closest to p. The first
// closest segment wins ties. An empty line has no nearest point.
func (m *Measure) NearestPointOnLine(p orb.Point, line orb.LineString) (orb.Point, bool) {
	switch len(line) {
	case 0:
		return orb.Point{}, false
	case 1:
		return line[0], true
	}

	var best orb.Point
	bestDist := 0.0
	for i := 1; i < len(line); i++ {
		q := m.NearestPointOnSegment(p, line[i-1], line[i])
		d := m.Distance(p, q)
		if i == 1 || d < bestDist {
			best = q
			bestDist = d
		}
	}
	return best, true
}

// PointToLineDistance is the distance from p to its nearest point on line.
func (m *Measure) PointToLineDistance(p orb.Point, line orb.LineString) (float64, bool) {
	q, ok := m.NearestPointOnLine(p, line)
	if !ok {
		return 0, false
	}
	return m.Distance(p, q), true
}
