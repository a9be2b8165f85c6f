package topojson

import (
	"strconv"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/xyxYang/geometry-calculator/topo"
)

type linkObject struct {
	geom *Geometry
	arc  *arc
}

// extractLinks copies link coordinates sequentially into the coordinate
// buffer, one arc per link. Arc references are filled in by unpack.
func (t *Topology) extractLinks(g *topo.Graph) *Geometry {
	collection := &Geometry{Type: geojson.GeometryCollection}
	for _, l := range g.Links {
		o := &Geometry{
			ID:         strconv.Itoa(l.ID),
			Type:       geojson.GeometryLineString,
			Properties: properties(l.Feature),
		}
		o.Properties["link_id"] = l.ID
		o.Properties["snode"] = l.Start
		o.Properties["enode"] = l.End

		t.extractLine(l.Line, o)
		collection.Geometries = append(collection.Geometries, o)
	}
	return collection
}

func (t *Topology) extractLine(line orb.LineString, o *Geometry) {
	n := len(line)
	for i := 0; i < n; i++ {
		t.coordinates = append(t.coordinates, []float64{line[i][0], line[i][1]})
	}

	index := len(t.coordinates) - 1
	t.lines = append(t.lines, linkObject{
		geom: o,
		arc:  &arc{Start: index - n + 1, End: index},
	})
}

func (t *Topology) extractNodes(g *topo.Graph) *Geometry {
	collection := &Geometry{Type: geojson.GeometryCollection}
	for _, n := range g.Nodes {
		o := &Geometry{
			ID:         strconv.Itoa(n.ID),
			Type:       geojson.GeometryPoint,
			Properties: properties(n.Feature),
			Point:      t.quantizePoint([]float64{n.Point.Lon(), n.Point.Lat()}),
		}
		o.Properties["node_id"] = n.ID
		o.Properties["degree"] = g.Degree(n)
		o.Properties["links"] = n.LinkList()
		collection.Geometries = append(collection.Geometries, o)
	}
	return collection
}

func properties(f topo.Feature) map[string]interface{} {
	props := make(map[string]interface{})
	if f == nil {
		return props
	}
	for k, v := range f.Properties() {
		props[k] = v
	}
	return props
}
