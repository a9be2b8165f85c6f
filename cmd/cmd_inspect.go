package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kr/pretty"
	"github.com/xyxYang/geometry-calculator/topo"
)

type CmdInspect struct {
	global *GlobalOptions

	BuildOptions
}

func init() {
	_, err := parser.AddCommand("inspect",
		"Inspect items",
		"Build the topology and dump a node or link",
		&CmdInspect{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdInspect) Usage() string {
	return "[node|link] id"
}

func (cmd *CmdInspect) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	id, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}

	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}
	err = cmd.Apply(config)
	if err != nil {
		return err
	}

	g, err := cmd.Pipeline(config).Build(context.Background())
	if err != nil {
		return fmt.Errorf("Failed to build: %s", err)
	}

	switch args[0] {
	case "node":
		if id < 0 || id >= len(g.Nodes) {
			return fmt.Errorf("Unknown node %d", id)
		}
		fmt.Printf("%# v\n", pretty.Formatter(g.Nodes[id]))
	case "link":
		if id < 0 || id >= len(g.Links) {
			return fmt.Errorf("Unknown link %d", id)
		}
		l := g.Links[id]
		fmt.Printf("%# v\n", pretty.Formatter(l))
		for _, n := range []*topo.Node{g.StartNode(l), g.EndNode(l)} {
			if n != nil {
				fmt.Printf("node %d at %v, links %s\n", n.ID, n.Point, n.LinkList())
			}
		}
	default:
		return fmt.Errorf("Unknown type %s, Usage: %s", args[0], cmd.Usage())
	}

	return nil
}
