package geo

import (
	"github.com/paulmach/orb"
)

// MidPointByPercent interpolates linearly between s and e. The percent is
// clamped to [0, 1] and the endpoints are returned exactly at the bounds.
func MidPointByPercent(s, e orb.Point, percent float64) orb.Point {
	if percent <= 0 {
		return s
	}
	if percent >= 1 {
		return e
	}
	return orb.Point{
		s.Lon() + (e.Lon()-s.Lon())*percent,
		s.Lat() + (e.Lat()-s.Lat())*percent,
	}
}

// MidPointByLength returns the point length meters from s towards e.
func (m *Measure) MidPointByLength(s, e orb.Point, length float64) orb.Point {
	d := m.Distance(s, e)
	if d == 0 {
		return s
	}
	return MidPointByPercent(s, e, length/d)
}

// SplitLineByLength cuts a line into consecutive parts of at most length
// meters each; the last part holds the remainder. Break points that fall
// within SamePointDistance of a vertex snap onto that vertex.
func (m *Measure) SplitLineByLength(line orb.LineString, length float64) []orb.LineString {
	if length <= 0 || len(line) < 2 {
		return nil
	}

	tol := m.tolerance()
	parts := make([]orb.LineString, 0)
	current := orb.LineString{line[0]}
	pos := line[0]
	room := length

	for i := 1; i < len(line); i++ {
		next := line[i]
		d := m.Distance(pos, next)
		for d-room > tol {
			cut := MidPointByPercent(pos, next, room/d)
			current = append(current, cut)
			parts = append(parts, current)

			current = orb.LineString{cut}
			pos = cut
			room = length
			d = m.Distance(pos, next)
		}

		current = append(current, next)
		pos = next
		room -= d

		if room <= tol && i < len(line)-1 {
			parts = append(parts, current)
			current = orb.LineString{next}
			room = length
		}
	}

	if len(current) > 1 {
		parts = append(parts, current)
	}
	return parts
}

// StartPartByLength returns the leading length meters of a line. A length
// beyond the end of the line yields a copy of the whole line.
func (m *Measure) StartPartByLength(line orb.LineString, length float64) orb.LineString {
	if length <= 0 || len(line) < 2 {
		return nil
	}

	tol := m.tolerance()
	part := orb.LineString{line[0]}
	room := length
	for i := 1; i < len(line); i++ {
		d := m.Distance(line[i-1], line[i])
		if d-room > tol {
			return append(part, MidPointByPercent(line[i-1], line[i], room/d))
		}

		part = append(part, line[i])
		room -= d
		if room <= tol {
			return part
		}
	}
	return part
}

// EndPartByLength returns the trailing length meters of a line, keeping
// the original direction.
func (m *Measure) EndPartByLength(line orb.LineString, length float64) orb.LineString {
	reversed := line.Clone()
	reversed.Reverse()

	part := m.StartPartByLength(reversed, length)
	part.Reverse()
	return part
}

func (m *Measure) StartPartByPercent(line orb.LineString, percent float64) orb.LineString {
	if percent <= 0 {
		return nil
	}
	if percent >= 1 {
		return line.Clone()
	}
	return m.StartPartByLength(line, m.LineLength(line)*percent)
}

func (m *Measure) EndPartByPercent(line orb.LineString, percent float64) orb.LineString {
	if percent <= 0 {
		return nil
	}
	if percent >= 1 {
		return line.Clone()
	}
	return m.EndPartByLength(line, m.LineLength(line)*percent)
}
