// Package geojson reads road features from GeoJSON and writes built graphs
// back out as GeoJSON feature collections.
package geojson

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/xyxYang/geometry-calculator/topo"
)

// Feature exposes a GeoJSON feature as a topology feature.
type Feature struct {
	Raw  *geojson.Feature
	geom orb.Geometry
}

func NewFeature(raw *geojson.Feature) *Feature {
	if raw.Properties == nil {
		raw.Properties = make(map[string]interface{})
	}
	return &Feature{Raw: raw, geom: toOrb(raw.Geometry)}
}

func (f *Feature) Geometry() orb.Geometry             { return f.geom }
func (f *Feature) Properties() map[string]interface{} { return f.Raw.Properties }

// Features converts a collection. MultiLineStrings are split into one
// feature per part, each sharing the original properties.
func Features(fc *geojson.FeatureCollection) []topo.Feature {
	out := make([]topo.Feature, 0, len(fc.Features))
	for _, raw := range fc.Features {
		if raw.Geometry != nil && raw.Geometry.Type == geojson.GeometryMultiLineString {
			for _, part := range raw.Geometry.MultiLineString {
				f := geojson.NewLineStringFeature(part)
				f.ID = raw.ID
				f.Properties = raw.Properties
				out = append(out, NewFeature(f))
			}
			continue
		}
		out = append(out, NewFeature(raw))
	}
	return out
}

func Decode(r io.Reader) ([]topo.Feature, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode feature collection")
	}
	return Features(fc), nil
}

func ReadFile(path string) ([]topo.Feature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	features, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return features, nil
}

func toOrb(g *geojson.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}

	switch g.Type {
	case geojson.GeometryPoint:
		if len(g.Point) < 2 {
			return nil
		}
		return orb.Point{g.Point[0], g.Point[1]}
	case geojson.GeometryMultiPoint:
		return orb.MultiPoint(toLine(g.MultiPoint))
	case geojson.GeometryLineString:
		return toLine(g.LineString)
	case geojson.GeometryPolygon:
		poly := make(orb.Polygon, 0, len(g.Polygon))
		for _, ring := range g.Polygon {
			poly = append(poly, orb.Ring(toLine(ring)))
		}
		return poly
	}
	return nil
}

func toLine(coords [][]float64) orb.LineString {
	line := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		line = append(line, orb.Point{c[0], c[1]})
	}
	return line
}

func fromLine(line orb.LineString) [][]float64 {
	coords := make([][]float64, len(line))
	for i, p := range line {
		coords[i] = []float64{p.Lon(), p.Lat()}
	}
	return coords
}

// LineCollection wraps bare lines, e.g. the parts of a split.
func LineCollection(lines []orb.LineString, props map[string]interface{}) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, l := range lines {
		f := geojson.NewLineStringFeature(fromLine(l))
		for k, v := range props {
			f.SetProperty(k, v)
		}
		fc.AddFeature(f)
	}
	return fc
}

// Links returns one feature per link carrying the input attributes plus
// link_id, snode and enode. Unattached ends are -1.
func Links(g *topo.Graph) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, l := range g.Links {
		f := geojson.NewLineStringFeature(fromLine(l.Line))
		copyProperties(f, l.Feature)
		f.SetProperty("link_id", l.ID)
		f.SetProperty("snode", l.Start)
		f.SetProperty("enode", l.End)
		fc.AddFeature(f)
	}
	return fc
}

// Nodes returns one point feature per node with node_id, degree and the
// comma separated ids of the attached links.
func Nodes(g *topo.Graph) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, n := range g.Nodes {
		f := geojson.NewPointFeature([]float64{n.Point.Lon(), n.Point.Lat()})
		copyProperties(f, n.Feature)
		f.SetProperty("node_id", n.ID)
		f.SetProperty("degree", g.Degree(n))
		f.SetProperty("links", n.LinkList())
		fc.AddFeature(f)
	}
	return fc
}

func copyProperties(f *geojson.Feature, src topo.Feature) {
	if src == nil {
		return
	}
	for k, v := range src.Properties() {
		f.SetProperty(k, v)
	}
}

// WriteGraph writes links.geojson and nodes.geojson into dir.
func WriteGraph(dir string, g *topo.Graph) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = writeCollection(filepath.Join(dir, "links.geojson"), Links(g))
	if err != nil {
		return err
	}
	return writeCollection(filepath.Join(dir, "nodes.geojson"), Nodes(g))
}

func WriteFile(path string, fc *geojson.FeatureCollection) error {
	return writeCollection(path, fc)
}

func writeCollection(path string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return ioutil.WriteFile(path, data, 0644)
}
