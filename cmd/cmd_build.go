package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/xyxYang/geometry-calculator/pipeline"
	"github.com/xyxYang/geometry-calculator/topo"
)

type CmdBuild struct {
	global *GlobalOptions

	BuildOptions
	Output   string  `short:"o" long:"output" description:"Output directory, or file for topojson" required:"true"`
	Format   string  `short:"f" long:"format" description:"Output format" choice:"geojson" choice:"topojson" choice:"shapefile"`
	Quantize float64 `short:"q" long:"quantize" description:"TopoJSON quantization"`
	Quiet    bool    `long:"quiet" description:"No progress bar"`
}

func init() {
	_, err := parser.AddCommand("build",
		"Build topology",
		"Build a node/link topology from road lines and write it out",
		&CmdBuild{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdBuild) Execute(args []string) error {
	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Format != "" {
		config.Output.Format = cmd.Format
	}
	if cmd.Quantize > 0 {
		config.Output.Quantize = cmd.Quantize
	}
	err = cmd.Apply(config)
	if err != nil {
		return err
	}

	p := cmd.Pipeline(config).Logger(log.Printf)
	if !cmd.Quiet {
		update, finish := progressBar("links ")
		defer finish()
		p.Progress(update)
	}

	g, err := p.Run(context.Background(), cmd.Output)
	if err != nil {
		return fmt.Errorf("Failed to build: %s", err)
	}

	printStats(g.Stats(), config)
	return nil
}

func printStats(s topo.Stats, config *pipeline.Config) {
	fmt.Printf("mode:           %s\n", config.Mode)
	fmt.Printf("links:          %d\n", s.Links)
	fmt.Printf("nodes:          %d\n", s.Nodes)
	fmt.Printf("dangling ends:  %d\n", s.DanglingEnds)
	fmt.Printf("isolated nodes: %d\n", s.IsolatedNodes)
	fmt.Printf("skipped:        %d\n", s.Skipped)
	fmt.Printf("ambiguous keys: %d\n", s.Ambiguous)
}
