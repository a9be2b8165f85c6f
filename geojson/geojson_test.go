package geojson

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cheekybits/is"
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/xyxYang/geometry-calculator/topo"
)

const roads = `{"type":"FeatureCollection","features":[
{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,0]]},"properties":{"name":"a"}},
{"type":"Feature","geometry":{"type":"MultiLineString","coordinates":[[[1,0],[2,0]],[[2,0],[2,1]]]},"properties":{"name":"b"}},
{"type":"Feature","geometry":{"type":"Point","coordinates":[5,5]},"properties":null}
]}`

func TestDecode(t *testing.T) {
	is := is.New(t)

	features, err := Decode(strings.NewReader(roads))
	is.NoErr(err)
	is.Equal(len(features), 4)

	is.Equal(features[0].Geometry(), orb.LineString{{0, 0}, {1, 0}})
	is.Equal(features[0].Properties()["name"], "a")
	is.Equal(features[1].Geometry(), orb.LineString{{1, 0}, {2, 0}})
	is.Equal(features[2].Geometry(), orb.LineString{{2, 0}, {2, 1}})
	is.Equal(features[2].Properties()["name"], "b")
	is.Equal(features[3].Geometry(), orb.Point{5, 5})
	is.NotNil(features[3].Properties())
}

func TestDecodeInvalid(t *testing.T) {
	is := is.New(t)

	_, err := Decode(strings.NewReader(`{"type":`))
	is.Err(err)
}

func TestLinksAndNodes(t *testing.T) {
	is := is.New(t)

	features, err := Decode(strings.NewReader(roads))
	is.NoErr(err)

	g, err := topo.NewBuilder().InferNodes(features[:3])
	is.NoErr(err)

	links := Links(g)
	is.Equal(len(links.Features), 3)
	is.Equal(links.Features[0].Properties["name"], "a")
	is.Equal(links.Features[0].Properties["snode"], 0)
	is.Equal(links.Features[0].Properties["enode"], 1)
	is.Equal(links.Features[1].Properties["snode"], 1)

	nodes := Nodes(g)
	is.Equal(len(nodes.Features), 4)
	is.Equal(nodes.Features[1].Properties["links"], "0,1")
	is.Equal(nodes.Features[1].Properties["degree"], 2)
	is.Equal(nodes.Features[1].Geometry.Point, []float64{1, 0})
}

func TestWriteGraph(t *testing.T) {
	is := is.New(t)

	dir, err := ioutil.TempDir("", "geojson")
	is.NoErr(err)
	defer os.RemoveAll(dir)

	g, err := topo.NewBuilder().MatchNodes(
		[]topo.Feature{topo.NewPointFeature(orb.Point{5, 5})},
		[]topo.Feature{topo.NewLineFeature(orb.LineString{{5, 5}, {6, 6}})},
	)
	is.NoErr(err)
	is.NoErr(WriteGraph(dir, g))

	data, err := ioutil.ReadFile(filepath.Join(dir, "links.geojson"))
	is.NoErr(err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	is.NoErr(err)
	is.Equal(len(fc.Features), 1)

	enode, err := fc.Features[0].PropertyInt("enode")
	is.NoErr(err)
	is.Equal(enode, -1)

	data, err = ioutil.ReadFile(filepath.Join(dir, "nodes.geojson"))
	is.NoErr(err)
	var raw map[string]interface{}
	is.NoErr(json.Unmarshal(data, &raw))
	is.Equal(raw["type"], "FeatureCollection")
}

func TestLineCollection(t *testing.T) {
	is := is.New(t)

	fc := LineCollection([]orb.LineString{{{0, 0}, {1, 1}}, {{1, 1}, {2, 2}}}, map[string]interface{}{"src": "x"})
	is.Equal(len(fc.Features), 2)
	is.Equal(fc.Features[1].Geometry.LineString, [][]float64{{1, 1}, {2, 2}})
	is.Equal(fc.Features[1].Properties["src"], "x")
}
