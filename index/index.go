// Spatial index over bounding boxes.
//
// Or in easier terms: insert a bunch of boxes with a payload, then ask: "which boxes touch this one?".
package index

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var (
	ErrIndexNotReady = errors.New("index not ready")
	ErrOutOfBounds   = errors.New("box outside index bounds")
)

// The tree only reports strictly overlapping rectangles. Queries are grown
// by this much and then filtered again with closed intervals.
const searchPad = 1e-9

type entry struct {
	payload interface{}
	box     orb.Bound
	rect    rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

type Index struct {
	bound orb.Bound
	tree  *rtreego.Rtree
}

// New creates an index that accepts boxes within bound.
func New(bound orb.Bound) (*Index, error) {
	if bound.Min[0] > bound.Max[0] || bound.Min[1] > bound.Max[1] {
		return nil, errors.Errorf("invalid index bounds %v", bound)
	}

	return &Index{
		bound: bound,
		tree:  rtreego.NewTree(2, 25, 50),
	}, nil
}

// Insert a payload with its bounding box.
//
// Note that concurrency is not supported! Insert everything before querying.
func (i *Index) Insert(payload interface{}, box orb.Bound) error {
	if i == nil || i.tree == nil {
		return ErrIndexNotReady
	}
	if !i.bound.Contains(box.Min) || !i.bound.Contains(box.Max) {
		return errors.Wrapf(ErrOutOfBounds, "insert %v into %v", box, i.bound)
	}

	rect, err := toRect(box)
	if err != nil {
		return err
	}
	i.tree.Insert(&entry{payload: payload, box: box, rect: rect})
	return nil
}

// Query returns every payload whose box intersects box, edges included.
// The result may contain payloads whose geometry does not actually touch
// the query area.
func (i *Index) Query(box orb.Bound) ([]interface{}, error) {
	if i == nil || i.tree == nil || i.tree.Size() == 0 {
		return nil, ErrIndexNotReady
	}

	rect, err := toRect(box.Pad(searchPad))
	if err != nil {
		return nil, err
	}

	results := i.tree.SearchIntersect(rect)
	matches := make([]interface{}, 0, len(results))
	for _, r := range results {
		e := r.(*entry)
		if e.box.Intersects(box) {
			matches = append(matches, e.payload)
		}
	}
	return matches, nil
}

func (i *Index) Len() int {
	if i == nil || i.tree == nil {
		return 0
	}
	return i.tree.Size()
}

func (i *Index) Bound() orb.Bound {
	return i.bound
}

// UnionBox returns the smallest box covering both a and b.
func UnionBox(a, b orb.Bound) orb.Bound {
	return orb.Bound{
		Min: orb.Point{min(a.Min[0], b.Min[0]), min(a.Min[1], b.Min[1])},
		Max: orb.Point{max(a.Max[0], b.Max[0]), max(a.Max[1], b.Max[1])},
	}
}

func toRect(box orb.Bound) (rtreego.Rect, error) {
	rect, err := rtreego.NewRectFromPoints(
		rtreego.Point{box.Min[0], box.Min[1]},
		rtreego.Point{box.Max[0], box.Max[1]},
	)
	if err != nil {
		return rtreego.Rect{}, errors.Wrap(err, "bounding box")
	}
	return rect, nil
}
