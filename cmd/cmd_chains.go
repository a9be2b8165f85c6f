package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type CmdChains struct {
	global *GlobalOptions

	BuildOptions
}

func init() {
	_, err := parser.AddCommand("chains",
		"List through chains",
		"Build the topology and print the node paths of links joined at pass-through nodes",
		&CmdChains{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdChains) Execute(args []string) error {
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

	for _, chain := range g.Chains() {
		ids := make([]string, len(chain))
		for i, n := range chain {
			ids[i] = strconv.Itoa(n)
		}
		fmt.Println(strings.Join(ids, " "))
	}
	return nil
}
