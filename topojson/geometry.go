package topojson

import (
	"encoding/json"
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// Geometry is a TopoJSON geometry object. Lines reference arcs by index.
type Geometry struct {
	ID         string                 `json:"id,omitempty"`
	Type       geojson.GeometryType   `json:"type"`
	Properties map[string]interface{} `json:"properties"`

	Point      []float64
	LineString []int
	Geometries []*Geometry
}

// MarshalJSON converts the geometry object into the correct JSON.
// This fulfills the json.Marshaler interface.
func (g *Geometry) MarshalJSON() ([]byte, error) {
	// defining a struct here lets us define the order of the JSON elements.
	type geometry struct {
		ID          string                 `json:"id,omitempty"`
		Type        geojson.GeometryType   `json:"type"`
		Properties  map[string]interface{} `json:"properties,omitempty"`
		Coordinates interface{}            `json:"coordinates,omitempty"`
		Arcs        interface{}            `json:"arcs,omitempty"`
		Geometries  interface{}            `json:"geometries,omitempty"`
	}

	geo := &geometry{
		ID:         g.ID,
		Type:       g.Type,
		Properties: g.Properties,
	}

	switch g.Type {
	case geojson.GeometryPoint:
		geo.Coordinates = g.Point
	case geojson.GeometryLineString:
		geo.Arcs = g.LineString
	case geojson.GeometryCollection:
		if g.Geometries == nil {
			geo.Geometries = []*Geometry{}
		} else {
			geo.Geometries = g.Geometries
		}
	}

	return json.Marshal(geo)
}

// UnmarshalJSON decodes the data into a TopoJSON geometry.
// This fulfills the json.Unmarshaler interface.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var object map[string]interface{}
	err := json.Unmarshal(data, &object)
	if err != nil {
		return err
	}

	return decodeGeometry(g, object)
}

func decodeGeometry(g *Geometry, object map[string]interface{}) error {
	t, ok := object["type"]
	if !ok {
		return errors.New("type property not defined")
	}

	if s, ok := t.(string); ok {
		g.Type = geojson.GeometryType(s)
	} else {
		return errors.New("type property not string")
	}

	if id, ok := object["id"].(string); ok {
		g.ID = id
	}
	if props, ok := object["properties"].(map[string]interface{}); ok {
		g.Properties = props
	}

	var err error
	switch g.Type {
	case geojson.GeometryPoint:
		g.Point, err = decodePosition(object["coordinates"])
	case geojson.GeometryLineString:
		g.LineString, err = decodeArcs(object["arcs"])
	case geojson.GeometryCollection:
		g.Geometries, err = decodeGeometries(object["geometries"])
	default:
		err = fmt.Errorf("unsupported geometry type %s", g.Type)
	}

	return err
}

func decodePosition(data interface{}) ([]float64, error) {
	coords, ok := data.([]interface{})
	if !ok {
		return nil, fmt.Errorf("not a valid position, got %v", data)
	}

	result := make([]float64, 0, len(coords))
	for _, coord := range coords {
		if f, ok := coord.(float64); ok {
			result = append(result, f)
		} else {
			return nil, fmt.Errorf("not a valid coordinate, got %v", coord)
		}
	}

	return result, nil
}

func decodeArcs(data interface{}) ([]int, error) {
	arcs, ok := data.([]interface{})
	if !ok {
		return nil, fmt.Errorf("not a valid set of arcs, got %v", data)
	}

	result := make([]int, 0, len(arcs))
	for _, arc := range arcs {
		// encoding/json decodes every number as float64
		f, ok := arc.(float64)
		if !ok || f != float64(int(f)) {
			return nil, fmt.Errorf("not a valid arc index, got %v", arc)
		}
		result = append(result, int(f))
	}

	return result, nil
}

func decodeGeometries(data interface{}) ([]*Geometry, error) {
	if vs, ok := data.([]interface{}); ok {
		geometries := make([]*Geometry, 0, len(vs))
		for _, v := range vs {
			g := &Geometry{}

			vmap, ok := v.(map[string]interface{})
			if !ok {
				break
			}

			err := decodeGeometry(g, vmap)
			if err != nil {
				return nil, err
			}

			geometries = append(geometries, g)
		}

		if len(geometries) == len(vs) {
			return geometries, nil
		}
	}

	return nil, fmt.Errorf("not a valid set of geometries, got %v", data)
}
