package geo

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulmach/orb"
)

func TestBearingCardinal(t *testing.T) {
	is := is.New(t)

	b, ok := Bearing(orb.LineString{{0, 0}, {0, 1}})
	is.True(ok)
	is.Equal(b, 0.0)

	b, _ = Bearing(orb.LineString{{0, 0}, {1, 0}})
	is.Equal(b, 90.0)

	b, _ = Bearing(orb.LineString{{0, 0}, {0, -1}})
	is.Equal(b, 180.0)

	b, _ = Bearing(orb.LineString{{0, 0}, {-1, 0}})
	is.Equal(b, 270.0)
}

func TestBearingQuadrants(t *testing.T) {
	is := is.New(t)

	b, ok := Bearing(orb.LineString{{0, 0}, {0.5, 3}, {1, 1}})
	is.True(ok)
	is.True(math.Abs(b-45) < 1e-9)

	b, _ = Bearing(orb.LineString{{0, 0}, {1, -1}})
	is.True(math.Abs(b-135) < 1e-9)

	b, _ = Bearing(orb.LineString{{0, 0}, {-1, -1}})
	is.True(math.Abs(b-225) < 1e-9)

	b, _ = Bearing(orb.LineString{{0, 0}, {-1, 1}})
	is.True(math.Abs(b-315) < 1e-9)
}

func TestBearingDegenerate(t *testing.T) {
	is := is.New(t)

	_, ok := Bearing(orb.LineString{{1, 1}})
	is.False(ok)
	_, ok = Bearing(nil)
	is.False(ok)

	b, ok := Bearing(orb.LineString{{1, 1}, {2, 2}, {1, 1}})
	is.True(ok)
	is.Equal(b, 0.0)
}

func TestAngleBetween(t *testing.T) {
	is := is.New(t)
	m := DefaultMeasure()

	north := orb.LineString{{0, 0}, {0, 1}}
	east := orb.LineString{{0, 0}, {1, 0}}
	west := orb.LineString{{0, 0}, {-1, 0}}

	a, ok := m.AngleBetween(north, east)
	is.True(ok)
	is.Equal(a, 90.0)

	a, ok = m.AngleBetween(east, north)
	is.True(ok)
	is.Equal(a, 270.0)

	a, ok = m.AngleBetween(west, east)
	is.True(ok)
	is.Equal(a, 180.0)

	_, ok = m.AngleBetween(north, orb.LineString{{0, 0}})
	is.False(ok)
}

func TestAngleBetweenZeroBearingUndefined(t *testing.T) {
	is := is.New(t)
	m := DefaultMeasure()
	m.ZeroBearingUndefined = true

	north := orb.LineString{{0, 0}, {0, 1}}
	east := orb.LineString{{0, 0}, {1, 0}}

	_, ok := m.AngleBetween(north, east)
	is.False(ok)

	a, ok := m.AngleBetween(east, orb.LineString{{0, 0}, {0, -1}})
	is.True(ok)
	is.Equal(a, 90.0)
}
