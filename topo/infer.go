package topo

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/xyxYang/geometry-calculator/index"
)

// InferNodes builds a graph from line features alone. Line endpoints
// within SamePointDistance of each other share a node.
//
// Links are scanned in input order. Each endpoint without a node seeds a
// new one, which claims every still unclaimed endpoint close to the seed.
// Clustering is therefore not transitive: an endpoint close to a claimed
// endpoint but not to its seed gets its own node.
func (b *Builder) InferNodes(lines []Feature) (*Graph, error) {
	g := &Graph{}
	b.addLinks(g, lines)
	if len(g.Links) == 0 {
		return g, nil
	}

	idx, err := b.indexLinks(g.Links)
	if err != nil {
		return nil, err
	}

	m := b.measure
	assigned := make([]int, 2*len(g.Links))
	for i := range assigned {
		assigned[i] = NoNode
	}
	seeds := make([]orb.Point, 0)

	total := len(g.Links)
	for li, link := range g.Links {
		for _, e := range []End{StartEnd, EndEnd} {
			if assigned[slot(li, e)] != NoNode {
				continue
			}

			seed := link.Endpoint(e)
			node := len(seeds)
			seeds = append(seeds, seed)
			assigned[slot(li, e)] = node

			dLon, dLat := m.SamePointPad(seed.Lat())
			query := orb.Bound{Min: seed, Max: seed}
			query.Min[0] -= m.ZeroThreshold + dLon
			query.Min[1] -= m.ZeroThreshold + dLat
			query.Max[0] += m.ZeroThreshold + dLon
			query.Max[1] += m.ZeroThreshold + dLat

			found, err := idx.Query(query)
			if err != nil {
				return nil, errors.Wrapf(err, "query around link %d", li)
			}

			candidates := make([]int, 0, len(found))
			for _, f := range found {
				candidates = append(candidates, f.(int))
			}
			sort.Ints(candidates)

			for _, c := range candidates {
				for _, ce := range []End{StartEnd, EndEnd} {
					s := slot(c, ce)
					if assigned[s] != NoNode {
						continue
					}
					if m.IsSamePoint(seed, g.Links[c].Endpoint(ce)) {
						assigned[s] = node
					}
				}
			}
		}
		b.tick(li+1, total)
	}

	g.Nodes = make([]*Node, len(seeds))
	for i, p := range seeds {
		g.Nodes[i] = &Node{
			ID:      i,
			Feature: b.newNode(p),
			Point:   p,
		}
	}
	for li := range g.Links {
		for _, e := range []End{StartEnd, EndEnd} {
			g.attach(li, e, assigned[slot(li, e)])
		}
	}

	b.log("Inferred %d nodes for %d links", len(g.Nodes), len(g.Links))
	return g, nil
}

func slot(link int, e End) int {
	return 2*link + int(e)
}

func (b *Builder) indexLinks(links []*Link) (*index.Index, error) {
	bounds := make([]orb.Bound, len(links))
	global := links[0].Line.Bound().Pad(b.measure.ZeroThreshold)
	for i, l := range links {
		bounds[i] = l.Line.Bound().Pad(b.measure.ZeroThreshold)
		global = index.UnionBox(global, bounds[i])
	}

	idx, err := index.New(global)
	if err != nil {
		return nil, errors.Wrap(err, "create index")
	}
	for i, box := range bounds {
		err := idx.Insert(i, box)
		if err != nil {
			return nil, errors.Wrapf(err, "index link %d", i)
		}
	}
	return idx, nil
}
