// Package topojson encodes a built road graph as a TopoJSON topology with
// a "links" and a "nodes" object.
package topojson

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/xyxYang/geometry-calculator/topo"
)

type Topology struct {
	Type      string     `json:"type"`
	Transform *Transform `json:"transform,omitempty"`

	BoundingBox []float64            `json:"bbox,omitempty"`
	Objects     map[string]*Geometry `json:"objects"`
	Arcs        [][][]float64        `json:"arcs"`

	// For internal use only
	opts        *TopologyOptions
	coordinates [][]float64
	lines       []linkObject
}

type Transform struct {
	Scale     [2]float64 `json:"scale"`
	Translate [2]float64 `json:"translate"`
}

type TopologyOptions struct {
	// Quantize is the number of distinct positions per axis. Values
	// below 2 keep the raw coordinates.
	Quantize float64
}

// FromGraph converts a graph. Links with identical or reversed
// coordinates share one arc.
func FromGraph(g *topo.Graph, opts *TopologyOptions) *Topology {
	if opts == nil {
		opts = &TopologyOptions{}
	}

	t := &Topology{opts: opts}
	t.bounds(g)

	links := t.extractLinks(g)
	nodes := t.extractNodes(g)
	t.unpack()

	t.Objects = map[string]*Geometry{
		"links": links,
		"nodes": nodes,
	}
	return t
}

func (t *Topology) bounds(g *topo.Graph) {
	var b orb.Bound
	first := true
	extend := func(p orb.Point) {
		if first {
			b = orb.Bound{Min: p, Max: p}
			first = false
			return
		}
		b = b.Extend(p)
	}

	for _, l := range g.Links {
		for _, p := range l.Line {
			extend(p)
		}
	}
	for _, n := range g.Nodes {
		extend(n.Point)
	}
	if first {
		return
	}
	t.BoundingBox = []float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]}

	q := t.opts.Quantize
	if q < 2 {
		return
	}

	kx := (b.Max[0] - b.Min[0]) / (q - 1)
	ky := (b.Max[1] - b.Min[1]) / (q - 1)
	if kx == 0 {
		kx = 1
	}
	if ky == 0 {
		ky = 1
	}
	t.Transform = &Transform{
		Scale:     [2]float64{kx, ky},
		Translate: [2]float64{b.Min[0], b.Min[1]},
	}
}

// MarshalJSON converts the topology object into the proper JSON.
// Alternately one can call json.Marshal(t) directly for the same result.
func (t *Topology) MarshalJSON() ([]byte, error) {
	type topology Topology // no methods, avoids recursion

	t.Type = "Topology"
	if t.Objects == nil {
		t.Objects = make(map[string]*Geometry) // TopoJSON requires the objects attribute
	}
	if t.Arcs == nil {
		t.Arcs = make([][][]float64, 0) // TopoJSON requires the arcs attribute to be at least []
	}
	return json.Marshal((*topology)(t))
}

// Line resolves arc references into coordinates. Negative references
// (~index) walk the arc backwards.
func (t *Topology) Line(refs []int) orb.LineString {
	line := make(orb.LineString, 0)
	for i, ref := range refs {
		a := t.decodeArc(ref)
		if i > 0 && len(a) > 0 {
			a = a[1:]
		}
		line = append(line, a...)
	}
	return line
}

// Position maps a stored point position back to coordinates.
func (t *Topology) Position(p []float64) orb.Point {
	if t.Transform == nil {
		return orb.Point{p[0], p[1]}
	}
	return orb.Point{
		p[0]*t.Transform.Scale[0] + t.Transform.Translate[0],
		p[1]*t.Transform.Scale[1] + t.Transform.Translate[1],
	}
}

func (t *Topology) decodeArc(ref int) orb.LineString {
	reversed := ref < 0
	if reversed {
		ref = ^ref
	}
	if ref >= len(t.Arcs) {
		return nil
	}

	line := make(orb.LineString, 0, len(t.Arcs[ref]))
	x, y := 0.0, 0.0
	for _, p := range t.Arcs[ref] {
		if t.Transform == nil {
			line = append(line, orb.Point{p[0], p[1]})
			continue
		}
		x += p[0]
		y += p[1]
		line = append(line, t.Position([]float64{x, y}))
	}

	if reversed {
		line.Reverse()
	}
	return line
}

// Internal structs

type arc struct {
	Start int
	End   int
}

func pointEquals(a, b []float64) bool {
	return a[0] == b[0] && a[1] == b[1]
}
