package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

func TestParseConfig(t *testing.T) {
	is := is.New(t)

	config, err := ParseConfig(strings.NewReader(`
same_point_distance: 0.5
mode: explicit
node_key: geohash
geohash_precision: 8
output:
  format: topojson
  quantize: 10000
`))
	is.NoErr(err)
	is.Equal(config.SamePointDistance, 0.5)
	is.Equal(config.EarthRadius, 6378137.0)
	is.Equal(config.Mode, ModeExplicit)
	is.Equal(config.GeohashPrecision, uint(8))
	is.Equal(config.Output.Format, FormatTopoJSON)
	is.Equal(config.Output.Quantize, 10000.0)

	m := config.Measure()
	is.Equal(m.SamePointDistance, 0.5)
	is.Equal(m.ZeroThreshold, 1e-6)
}

func TestParseConfigInvalid(t *testing.T) {
	is := is.New(t)

	for _, in := range []string{
		"earth_radius: 0",
		"same_point_distance: -1",
		"zero_threshold: -1",
		"mode: guess",
		"node_key: h3",
		"node_key: geohash\ngeohash_precision: 13",
		"node_key: s2\ns2_level: 31",
		"output:\n  format: kml",
		"mode: [",
	} {
		_, err := ParseConfig(strings.NewReader(in))
		is.Err(err)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	is := is.New(t)

	config, err := LoadConfig(filepath.Join(os.TempDir(), "no-such-config.yaml"))
	is.NoErr(err)
	is.Equal(config, NewConfig())
}

func TestKeyFunc(t *testing.T) {
	is := is.New(t)

	config := NewConfig()
	key, err := config.KeyFunc()
	is.NoErr(err)
	is.Equal(key([2]float64{5, 5}), "5|5")

	config.NodeKey = KeyS2
	key, err = config.KeyFunc()
	is.NoErr(err)
	is.NotEqual(key([2]float64{5, 5}), "5|5")
}
