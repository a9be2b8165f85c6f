// Package shapefile reads road features from ESRI shapefiles and writes
// built graphs as a pair of link and node shapefiles.
package shapefile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/xyxYang/geometry-calculator/topo"
)

// FieldWidth is the width of every written attribute column.
const FieldWidth = 20

// dBase limits column names to 10 bytes.
const maxFieldName = 10

type Feature struct {
	geom  orb.Geometry
	props map[string]interface{}
}

func (f *Feature) Geometry() orb.Geometry             { return f.geom }
func (f *Feature) Properties() map[string]interface{} { return f.props }

// ReadFile loads every record of a shapefile. Multi part polylines are
// split into one feature per part. Attributes are read as strings.
func ReadFile(path string) ([]topo.Feature, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer r.Close()

	fields := r.Fields()
	out := make([]topo.Feature, 0)
	for r.Next() {
		_, shape := r.Shape()

		props := make(map[string]interface{}, len(fields))
		for i, f := range fields {
			props[f.String()] = strings.Trim(r.Attribute(i), "\x00 ")
		}

		switch s := shape.(type) {
		case *shp.Point:
			out = append(out, &Feature{geom: orb.Point{s.X, s.Y}, props: props})
		case *shp.PolyLine:
			for _, part := range splitParts(s.Parts, s.Points) {
				out = append(out, &Feature{geom: part, props: props})
			}
		case *shp.PolyLineZ:
			for _, part := range splitParts(s.Parts, s.Points) {
				out = append(out, &Feature{geom: part, props: props})
			}
		default:
			// Unsupported shapes are kept so the builder reports them.
			out = append(out, &Feature{props: props})
		}
	}

	if err := r.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return out, nil
}

func splitParts(parts []int32, points []shp.Point) []orb.LineString {
	out := make([]orb.LineString, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}

		line := make(orb.LineString, 0, end-start)
		for _, p := range points[start:end] {
			line = append(line, orb.Point{p.X, p.Y})
		}
		out = append(out, line)
	}
	return out
}

// WriteGraph writes links.shp and nodes.shp (with their .shx and .dbf)
// into dir.
func WriteGraph(dir string, g *topo.Graph) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = writeLinks(filepath.Join(dir, "links.shp"), g)
	if err != nil {
		return err
	}
	return writeNodes(filepath.Join(dir, "nodes.shp"), g)
}

func writeLinks(path string, g *topo.Graph) error {
	features := make([]topo.Feature, len(g.Links))
	for i, l := range g.Links {
		features[i] = l.Feature
	}
	names := columns(features, "link_id", "snode", "enode")

	w, err := create(path, shp.POLYLINE, names)
	if err != nil {
		return err
	}

	for _, l := range g.Links {
		row := w.Write(shp.NewPolyLine([][]shp.Point{toPoints(l.Line)}))
		values := attributes(l.Feature)
		values["link_id"] = l.ID
		values["snode"] = l.Start
		values["enode"] = l.End

		err := writeRow(w, row, names, values)
		if err != nil {
			w.Close()
			return errors.Wrapf(err, "link %d", l.ID)
		}
	}
	return finish(w, path)
}

func writeNodes(path string, g *topo.Graph) error {
	features := make([]topo.Feature, len(g.Nodes))
	for i, n := range g.Nodes {
		features[i] = n.Feature
	}
	names := columns(features, "node_id", "degree", "links")

	w, err := create(path, shp.POINT, names)
	if err != nil {
		return err
	}

	for _, n := range g.Nodes {
		row := w.Write(&shp.Point{X: n.Point.Lon(), Y: n.Point.Lat()})
		values := attributes(n.Feature)
		values["node_id"] = n.ID
		values["degree"] = g.Degree(n)
		values["links"] = n.LinkList()

		err := writeRow(w, row, names, values)
		if err != nil {
			w.Close()
			return errors.Wrapf(err, "node %d", n.ID)
		}
	}
	return finish(w, path)
}

// finish closes the writer and moves the attribute table to where readers
// expect it: the writer names it <base>dbf instead of <base>.dbf.
func finish(w *shp.Writer, path string) error {
	w.Close()

	base := strings.TrimSuffix(path, filepath.Ext(path))
	err := os.Rename(base+"dbf", base+".dbf")
	if err != nil {
		return errors.Wrapf(err, "finish %s", path)
	}
	return nil
}

func create(path string, t shp.ShapeType, names []string) (*shp.Writer, error) {
	w, err := shp.Create(path, t)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}

	fields := make([]shp.Field, len(names))
	for i, name := range names {
		fields[i] = shp.StringField(name, FieldWidth)
	}
	err = w.SetFields(fields)
	if err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "fields of %s", path)
	}
	return w, nil
}

// columns lists the attribute names found on the features in sorted
// order, followed by the extra names.
func columns(features []topo.Feature, extra ...string) []string {
	reserved := make(map[string]bool, len(extra))
	for _, e := range extra {
		reserved[e] = true
	}

	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, f := range features {
		if f == nil {
			continue
		}
		for k := range f.Properties() {
			k = fieldName(k)
			if seen[k] || reserved[k] {
				continue
			}
			seen[k] = true
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return append(names, extra...)
}

func fieldName(name string) string {
	if len(name) > maxFieldName {
		return name[:maxFieldName]
	}
	return name
}

func attributes(f topo.Feature) map[string]interface{} {
	values := make(map[string]interface{})
	if f == nil {
		return values
	}
	for k, v := range f.Properties() {
		values[fieldName(k)] = v
	}
	return values
}

func writeRow(w *shp.Writer, row int32, names []string, values map[string]interface{}) error {
	for i, name := range names {
		s := ""
		if v, ok := values[name]; ok && v != nil {
			s = fmt.Sprint(v)
		}
		if len(s) > FieldWidth {
			s = s[:FieldWidth]
		}

		// Padded so unset columns read back as empty strings.
		err := w.WriteAttribute(int(row), i, fmt.Sprintf("%-*s", FieldWidth, s))
		if err != nil {
			return err
		}
	}
	return nil
}

func toPoints(line orb.LineString) []shp.Point {
	points := make([]shp.Point, len(line))
	for i, p := range line {
		points[i] = shp.Point{X: p.Lon(), Y: p.Lat()}
	}
	return points
}
