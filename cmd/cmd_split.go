package cmd

import (
	"fmt"
	"log"

	"github.com/paulmach/orb"
	"github.com/xyxYang/geometry-calculator/geojson"
	"github.com/xyxYang/geometry-calculator/pipeline"
)

type CmdSplit struct {
	global *GlobalOptions

	Length float64 `long:"length" description:"Split into parts of at most this many meters"`
	Start  float64 `long:"start" description:"Keep the leading fraction (0..1) of every line"`
	End    float64 `long:"end" description:"Keep the trailing fraction (0..1) of every line"`
	Quiet  bool    `long:"quiet"`
}

func init() {
	_, err := parser.AddCommand("split",
		"Split lines",
		"Cut every line of a feature file by length or percentage and write GeoJSON",
		&CmdSplit{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdSplit) Usage() string {
	return "input output.geojson"
}

func (cmd *CmdSplit) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Input or output not specified, Usage: %s", cmd.Usage())
	}

	set := 0
	for _, v := range []float64{cmd.Length, cmd.Start, cmd.End} {
		if v != 0 {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("Specify exactly one of --length, --start or --end")
	}

	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}
	m := config.Measure()

	features, err := pipeline.ReadFeatures(args[0])
	if err != nil {
		return err
	}

	parts := make([]orb.LineString, 0)
	skipped := 0
	for _, f := range features {
		line, ok := f.Geometry().(orb.LineString)
		if !ok || len(line) < 2 {
			skipped++
			continue
		}

		switch {
		case cmd.Length != 0:
			parts = append(parts, m.SplitLineByLength(line, cmd.Length)...)
		case cmd.Start != 0:
			if p := m.StartPartByPercent(line, cmd.Start); len(p) > 0 {
				parts = append(parts, p)
			}
		default:
			if p := m.EndPartByPercent(line, cmd.End); len(p) > 0 {
				parts = append(parts, p)
			}
		}
	}

	if !cmd.Quiet {
		log.Printf("Split %d lines into %d parts, skipped %d", len(features)-skipped, len(parts), skipped)
	}
	return geojson.WriteFile(args[1], geojson.LineCollection(parts, nil))
}
