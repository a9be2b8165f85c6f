// Package pipeline loads road features, builds their topology and writes
// the result, driven by a Config.
package pipeline

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xyxYang/geometry-calculator/geojson"
	"github.com/xyxYang/geometry-calculator/shapefile"
	"github.com/xyxYang/geometry-calculator/topo"
	"github.com/xyxYang/geometry-calculator/topojson"
	"golang.org/x/sync/errgroup"
)

type Pipeline struct {
	config   *Config
	lines    string
	nodes    string
	logf     topo.Logger
	progress func(done, total int)
}

func New(config *Config) *Pipeline {
	if config == nil {
		config = NewConfig()
	}
	return &Pipeline{config: config}
}

func (p *Pipeline) Lines(path string) *Pipeline {
	p.lines = path
	return p
}

// Nodes sets the node file used in explicit mode.
func (p *Pipeline) Nodes(path string) *Pipeline {
	p.nodes = path
	return p
}

func (p *Pipeline) Logger(fn topo.Logger) *Pipeline {
	p.logf = fn
	return p
}

func (p *Pipeline) Progress(fn func(done, total int)) *Pipeline {
	p.progress = fn
	return p
}

func (p *Pipeline) log(format string, args ...interface{}) {
	if p.logf != nil {
		p.logf(format, args...)
	}
}

// Build loads the inputs concurrently and builds the graph.
func (p *Pipeline) Build(ctx context.Context) (*topo.Graph, error) {
	if p.lines == "" {
		return nil, errors.New("no line file specified")
	}
	if p.config.Mode == ModeExplicit && p.nodes == "" {
		return nil, errors.New("explicit mode needs a node file")
	}

	keyFunc, err := p.config.KeyFunc()
	if err != nil {
		return nil, err
	}

	var lines, nodes []topo.Feature
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := ReadFeatures(p.lines)
		if err != nil {
			return err
		}
		lines = f
		p.log("Loaded %d line features from %s", len(f), p.lines)
		return ctx.Err()
	})
	if p.config.Mode == ModeExplicit {
		g.Go(func() error {
			f, err := ReadFeatures(p.nodes)
			if err != nil {
				return err
			}
			nodes = f
			p.log("Loaded %d node features from %s", len(f), p.nodes)
			return ctx.Err()
		})
	}
	err = g.Wait()
	if err != nil {
		return nil, err
	}

	b := topo.NewBuilder(
		topo.WithMeasure(p.config.Measure()),
		topo.WithKeyFunc(keyFunc),
		topo.WithLogger(p.logf),
		topo.WithProgress(p.progress),
	)

	if p.config.Mode == ModeExplicit {
		return b.MatchNodes(nodes, lines)
	}
	return b.InferNodes(lines)
}

// Run builds the graph and writes it to output.
func (p *Pipeline) Run(ctx context.Context, output string) (*topo.Graph, error) {
	g, err := p.Build(ctx)
	if err != nil {
		return nil, err
	}

	err = Write(g, p.config.Output, output)
	if err != nil {
		return nil, err
	}

	s := g.Stats()
	p.log("Wrote %d links and %d nodes to %s (%d skipped, %d dangling ends)", s.Links, s.Nodes, output, s.Skipped, s.DanglingEnds)
	return g, nil
}

// ReadFeatures picks a reader based on the file extension.
func ReadFeatures(path string) ([]topo.Feature, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return geojson.ReadFile(path)
	case ".shp":
		return shapefile.ReadFile(path)
	}
	return nil, errors.Errorf("unsupported feature file %s", path)
}

// Write stores a graph. GeoJSON and shapefile output go into a directory,
// TopoJSON into a single file.
func Write(g *topo.Graph, out OutputConfig, output string) error {
	switch out.Format {
	case FormatGeoJSON:
		return geojson.WriteGraph(output, g)
	case FormatShapefile:
		return shapefile.WriteGraph(output, g)
	case FormatTopoJSON:
		data, err := json.Marshal(topojson.FromGraph(g, &topojson.TopologyOptions{
			Quantize: out.Quantize,
		}))
		if err != nil {
			return errors.Wrap(err, "encode topology")
		}
		return ioutil.WriteFile(output, data, 0644)
	}
	return errors.Errorf("unknown output format %q", out.Format)
}
