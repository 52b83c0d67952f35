package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pangraph/graphindex/pathcover"
)

var Cover = cli.Command{
	Action: cover,
	Name:   "cover",
	Usage:  "generates a greedy path cover for a graph in GFA format",
	Flags: []cli.Flag{
		&pathsFlag,
		&coverKFlag,
	},
	ArgsUsage: "<graph.gfa>",
}

var (
	pathsFlag = cli.IntFlag{
		Name:  "n",
		Usage: "number of paths per component",
		Value: 16,
	}
	coverKFlag = cli.IntFlag{
		Name:  "cover-k",
		Usage: "length of the node windows to cover",
		Value: 4,
	}
)

func cover(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing graph file")
	}
	g, err := readGFA(context.Args().Get(0))
	if err != nil {
		return err
	}

	builder := pathcover.NewPathSet()
	progress := func(component, total int) bool {
		logger.Info().Int("component", component+1).Int("total", total).Msg("processing component")
		return true
	}
	err = pathcover.GenericPathCover(g, builder, context.Int(pathsFlag.Name), context.Int(coverKFlag.Name),
		pathcover.SimpleCoverage{}, progress)
	if err != nil {
		return err
	}

	for i, path := range builder.Paths() {
		name := builder.Names()[i]
		fmt.Printf("path sample=%d contig=%d:", name.Sample, name.Contig)
		for _, h := range path {
			orientation := "+"
			if h.IsReverse() {
				orientation = "-"
			}
			fmt.Printf(" %d%s", h.ID(), orientation)
		}
		fmt.Println()
	}
	logger.Info().
		Int("paths", len(builder.Paths())).
		Int("contigs", builder.Contigs()).
		Msg("path cover finished")
	return nil
}
