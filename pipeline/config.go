package pipeline

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/xyxYang/geometry-calculator/geo"
	"github.com/xyxYang/geometry-calculator/topo"
	yaml "gopkg.in/yaml.v2"
)

const (
	ModeInfer    = "infer"
	ModeExplicit = "explicit"

	KeyCoordinate = "coordinate"
	KeyGeohash    = "geohash"
	KeyS2         = "s2"

	FormatGeoJSON   = "geojson"
	FormatTopoJSON  = "topojson"
	FormatShapefile = "shapefile"
)

type Config struct {
	EarthRadius          float64 `yaml:"earth_radius"`
	SamePointDistance    float64 `yaml:"same_point_distance"`
	ZeroThreshold        float64 `yaml:"zero_threshold"`
	ZeroBearingUndefined bool    `yaml:"zero_bearing_undefined"`

	Mode             string `yaml:"mode"`
	NodeKey          string `yaml:"node_key"`
	GeohashPrecision uint   `yaml:"geohash_precision"`
	S2Level          int    `yaml:"s2_level"`

	Output OutputConfig `yaml:"output"`
}

type OutputConfig struct {
	Format   string  `yaml:"format"`
	Quantize float64 `yaml:"quantize"`
}

func NewConfig() *Config {
	return &Config{
		EarthRadius:       geo.EarthRadius,
		SamePointDistance: geo.SamePointDistance,
		ZeroThreshold:     geo.ZeroThreshold,
		Mode:              ModeInfer,
		NodeKey:           KeyCoordinate,
		GeohashPrecision:  9,
		S2Level:           24,
		Output: OutputConfig{
			Format: FormatGeoJSON,
		},
	}
}

// LoadConfig reads a config file. A missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	f, err := os.Open(configPath)
	if os.IsNotExist(err) {
		return NewConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	config, err := ParseConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", configPath)
	}
	return config, nil
}

// ParseConfig reads YAML on top of the defaults and validates the result.
func ParseConfig(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	config := NewConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.EarthRadius <= 0 {
		return errors.Errorf("earth_radius must be positive, got %v", c.EarthRadius)
	}
	if c.SamePointDistance < 0 {
		return errors.Errorf("same_point_distance must not be negative, got %v", c.SamePointDistance)
	}
	if c.ZeroThreshold < 0 {
		return errors.Errorf("zero_threshold must not be negative, got %v", c.ZeroThreshold)
	}

	switch c.Mode {
	case ModeInfer, ModeExplicit:
	default:
		return errors.Errorf("unknown mode %q", c.Mode)
	}

	if _, err := c.KeyFunc(); err != nil {
		return err
	}

	switch c.Output.Format {
	case FormatGeoJSON, FormatTopoJSON, FormatShapefile:
	default:
		return errors.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}

func (c *Config) Measure() *geo.Measure {
	return &geo.Measure{
		EarthRadius:          c.EarthRadius,
		SamePointDistance:    c.SamePointDistance,
		ZeroThreshold:        c.ZeroThreshold,
		ZeroBearingUndefined: c.ZeroBearingUndefined,
	}
}

func (c *Config) KeyFunc() (topo.KeyFunc, error) {
	switch c.NodeKey {
	case KeyCoordinate:
		return topo.CoordinateKey, nil
	case KeyGeohash:
		if c.GeohashPrecision < 1 || c.GeohashPrecision > 12 {
			return nil, errors.Errorf("geohash_precision must be within 1..12, got %d", c.GeohashPrecision)
		}
		return topo.GeohashKey(c.GeohashPrecision), nil
	case KeyS2:
		if c.S2Level < 0 || c.S2Level > 30 {
			return nil, errors.Errorf("s2_level must be within 0..30, got %d", c.S2Level)
		}
		return topo.CellKey(c.S2Level), nil
	}
	return nil, errors.Errorf("unknown node_key %q", c.NodeKey)
}
