package geo

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulmach/orb"
)

// 300 meters along the equator.
var equator300 = orb.LineString{{0, 0}, {0.0026949458523585646, 0}}

func TestSplitLineByLength(t *testing.T) {
	is := is.New(t)
	m := DefaultMeasure()

	parts := m.SplitLineByLength(equator300, 100)
	is.Equal(len(parts), 3)
	for _, p := range parts {
		is.Equal(len(p), 2)
		is.True(math.Abs(m.LineLength(p)-100) < 0.01)
	}
	is.Equal(parts[0][0], equator300[0])
	is.Equal(parts[2][1], equator300[1])
	is.Equal(parts[0][1], parts[1][0])
	is.Equal(parts[1][1], parts[2][0])
}

func TestSplitLineByLengthRemainder(t *testing.T) {
	is := is.New(t)
	m := DefaultMeasure()

	parts := m.SplitLineByLength(equator300, 120)
	is.Equal(len(parts), 3)
	is.True(math.Abs(m.LineLength(parts[2])-60) < 0.01)
}

func TestSplitLineByLengthSnapsToVertex(t *testing.T) {
	is := is.New(t)
	m := DefaultMeasure()

	mid := orb.Point{0.0026949458523585646 / 3, 0}
	line := orb.LineString{{0, 0}, mid, {0.0026949458523585646 * 2 / 3, 0}}

	parts := m.SplitLineByLength(line, 100)
	is.Equal(len(parts), 2)
	is.Equal(parts[0], orb.LineString{{0, 0}, mid})
	is.Equal(parts[1][0], mid)
}

func TestSplitLineByLengthInvalid(t *testing.T) {
	is := is.New(t)
	m := DefaultMeasure()

	is.Equal(len(m.SplitLineByLength(equator300, 0)), 0)
	is.Equal(len(m.SplitLineByLength(equator300, -5)), 0)
	is.Equal(len(m.SplitLineByLength(orb.LineString{{0, 0}}, 10)), 0)

	parts := m.SplitLineByLength(equator300, 1000)
	is.Equal(len(parts), 1)
	is.Equal(parts[0], equator300)
}

func TestStartEndPartByLength(t *testing.T) {
	is := is.New(t)
	m := DefaultMeasure()

	line := orb.LineString{{0, 0}, {0.001, 0}, {0.001, 0.001}}
	start := m.StartPartByLength(line, 150)
	is.Equal(start[0], line[0])
	is.Equal(start[1], line[1])
	is.Equal(len(start), 3)
	is.True(math.Abs(m.LineLength(start)-150) < 0.01)

	end := m.EndPartByLength(line, 50)
	is.Equal(len(end), 2)
	is.Equal(end[1], line[2])
	is.True(math.Abs(m.LineLength(end)-50) < 0.01)

	is.Equal(m.StartPartByLength(line, 10000), line)
	is.Equal(len(m.EndPartByLength(line, 0)), 0)
}

func TestPercentRoundTrip(t *testing.T) {
	is := is.New(t)
	m := DefaultMeasure()

	line := orb.LineString{{0, 0}, {0.001, 0}, {0.001, 0.002}, {0.003, 0.002}}
	total := m.LineLength(line)
	for _, p := range []float64{0.1, 0.25, 0.5, 0.8} {
		start := m.StartPartByPercent(line, p)
		end := m.EndPartByPercent(line, 1-p)
		sum := m.LineLength(start) + m.LineLength(end)
		is.True(math.Abs(sum-total) <= 2*m.SamePointDistance)
		is.Equal(start[0], line[0])
		is.Equal(end[len(end)-1], line[len(line)-1])
	}
}

func TestPercentBounds(t *testing.T) {
	is := is.New(t)
	m := DefaultMeasure()

	is.Equal(len(m.StartPartByPercent(equator300, 0)), 0)
	is.Equal(len(m.EndPartByPercent(equator300, -1)), 0)
	is.Equal(m.StartPartByPercent(equator300, 1), equator300)
	is.Equal(m.EndPartByPercent(equator300, 2), equator300)
}

func TestMidPoint(t *testing.T) {
	is := is.New(t)
	m := DefaultMeasure()

	s := orb.Point{0, 0}
	e := orb.Point{2, 4}
	is.Equal(MidPointByPercent(s, e, 0.5), orb.Point{1, 2})
	is.Equal(MidPointByPercent(s, e, -1), s)
	is.Equal(MidPointByPercent(s, e, 1.5), e)

	p := m.MidPointByLength(equator300[0], equator300[1], 150)
	is.True(math.Abs(m.Distance(equator300[0], p)-150) < 0.01)
	is.Equal(m.MidPointByLength(s, s, 10), s)
}
