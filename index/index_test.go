package index

import (
	"sort"
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var world = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

func box(x1, y1, x2, y2 float64) orb.Bound {
	return orb.Bound{Min: orb.Point{x1, y1}, Max: orb.Point{x2, y2}}
}

func ints(in []interface{}) []int {
	out := make([]int, 0, len(in))
	for _, v := range in {
		out = append(out, v.(int))
	}
	sort.Ints(out)
	return out
}

func TestQuery(t *testing.T) {
	is := is.New(t)

	idx, err := New(world)
	is.NoErr(err)
	is.NoErr(idx.Insert(1, box(0, 0, 1, 1)))
	is.NoErr(idx.Insert(2, box(2, 2, 3, 3)))
	is.NoErr(idx.Insert(3, box(0.5, 0.5, 2.5, 2.5)))
	is.Equal(idx.Len(), 3)

	res, err := idx.Query(box(0.9, 0.9, 0.95, 0.95))
	is.NoErr(err)
	is.Equal(ints(res), []int{1, 3})

	res, err = idx.Query(box(10, 10, 11, 11))
	is.NoErr(err)
	is.Equal(len(res), 0)
}

func TestQueryTouching(t *testing.T) {
	is := is.New(t)

	idx, err := New(world)
	is.NoErr(err)
	is.NoErr(idx.Insert(1, box(0, 0, 1, 1)))

	res, err := idx.Query(box(1, 1, 2, 2))
	is.NoErr(err)
	is.Equal(ints(res), []int{1})

	res, err = idx.Query(box(1.0001, 1, 2, 2))
	is.NoErr(err)
	is.Equal(len(res), 0)
}

func TestQueryZeroArea(t *testing.T) {
	is := is.New(t)

	idx, err := New(world)
	is.NoErr(err)
	is.NoErr(idx.Insert("a", box(5, 5, 5, 5)))

	res, err := idx.Query(box(5, 5, 5, 5))
	is.NoErr(err)
	is.Equal(len(res), 1)
	is.Equal(res[0], "a")
}

func TestNotReady(t *testing.T) {
	is := is.New(t)

	var empty *Index
	_, err := empty.Query(world)
	is.True(errors.Is(err, ErrIndexNotReady))

	_, err = (&Index{}).Query(world)
	is.True(errors.Is(err, ErrIndexNotReady))

	idx, err := New(world)
	is.NoErr(err)
	_, err = idx.Query(world)
	is.True(errors.Is(err, ErrIndexNotReady))
}

func TestOutOfBounds(t *testing.T) {
	is := is.New(t)

	idx, err := New(box(0, 0, 10, 10))
	is.NoErr(err)
	err = idx.Insert(1, box(5, 5, 11, 6))
	is.True(errors.Is(err, ErrOutOfBounds))
	is.Equal(idx.Len(), 0)
}

func TestInvalidBounds(t *testing.T) {
	is := is.New(t)

	_, err := New(box(1, 1, 0, 0))
	is.Err(err)
}

func TestUnionBox(t *testing.T) {
	is := is.New(t)

	u := UnionBox(box(0, 1, 2, 3), box(-1, 2, 1, 5))
	is.Equal(u, box(-1, 1, 2, 5))
	is.Equal(UnionBox(u, u), u)
}
