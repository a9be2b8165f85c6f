package cmd

import (
	"os"

	"github.com/cheggaaa/pb"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/xyxYang/geometry-calculator/pipeline"
)

type GlobalOptions struct {
	Config string `short:"c" long:"config" description:"YAML config file (defaults apply when missing)"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) LoadConfig() (*pipeline.Config, error) {
	if g.Config == "" {
		return pipeline.NewConfig(), nil
	}

	config, err := pipeline.LoadConfig(g.Config)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load config")
	}
	return config, nil
}

// BuildOptions are shared by every command that builds a graph. Set
// values override the config file.
type BuildOptions struct {
	Lines     string  `short:"l" long:"lines" description:"Line features (.geojson or .shp)" required:"true"`
	Nodes     string  `short:"n" long:"nodes" description:"Node features, explicit mode only"`
	Mode      string  `short:"m" long:"mode" description:"Node mode" choice:"infer" choice:"explicit"`
	NodeKey   string  `long:"node-key" description:"Explicit mode key" choice:"coordinate" choice:"geohash" choice:"s2"`
	Tolerance float64 `short:"t" long:"tolerance" description:"Same point distance in meters"`
}

func (o *BuildOptions) Apply(config *pipeline.Config) error {
	if o.Mode != "" {
		config.Mode = o.Mode
	}
	if o.NodeKey != "" {
		config.NodeKey = o.NodeKey
	}
	if o.Tolerance > 0 {
		config.SamePointDistance = o.Tolerance
	}
	if o.Nodes != "" && o.Mode == "" {
		config.Mode = pipeline.ModeExplicit
	}
	return config.Validate()
}

func (o *BuildOptions) Pipeline(config *pipeline.Config) *pipeline.Pipeline {
	return pipeline.New(config).Lines(o.Lines).Nodes(o.Nodes)
}

// progressBar returns a progress callback drawing to stderr and a func
// that completes the bar.
func progressBar(prefix string) (func(done, total int), func()) {
	var bar *pb.ProgressBar
	update := func(done, total int) {
		if bar == nil {
			bar = pb.New(total).Prefix(prefix)
			bar.Output = os.Stderr
			bar.Start()
		}
		bar.Set(done)
	}
	finish := func() {
		if bar != nil {
			bar.Finish()
		}
	}
	return update, finish
}
