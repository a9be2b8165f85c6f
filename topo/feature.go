package topo

import (
	"github.com/paulmach/orb"
)

// Feature is an input or output record: a geometry plus its attributes.
// Features are owned by the caller; the graph only references them.
type Feature interface {
	Geometry() orb.Geometry
	Properties() map[string]interface{}
}

// PointFeature is the node feature created while inferring nodes.
type PointFeature struct {
	Point orb.Point
	Props map[string]interface{}
}

func NewPointFeature(p orb.Point) Feature {
	return &PointFeature{
		Point: p,
		Props: make(map[string]interface{}),
	}
}

func (f *PointFeature) Geometry() orb.Geometry             { return f.Point }
func (f *PointFeature) Properties() map[string]interface{} { return f.Props }

// LineFeature is a plain line record, handy for callers without their own
// feature type.
type LineFeature struct {
	Line  orb.LineString
	Props map[string]interface{}
}

func NewLineFeature(line orb.LineString) Feature {
	return &LineFeature{
		Line:  line,
		Props: make(map[string]interface{}),
	}
}

func (f *LineFeature) Geometry() orb.Geometry             { return f.Line }
func (f *LineFeature) Properties() map[string]interface{} { return f.Props }
