package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pangraph/graphindex/minimizer"
)

var Extract = cli.Command{
	Action: extract,
	Name:   "extract",
	Usage:  "lists the minimizers of a DNA sequence",
	Flags: []cli.Flag{
		&kFlag,
		&wFlag,
	},
	ArgsUsage: "<sequence>",
}

func extract(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing sequence argument")
	}
	seq := []byte(context.Args().Get(0))

	idx := minimizer.New(context.Int(kFlag.Name), context.Int(wFlag.Name))
	for _, m := range idx.Minimizers(seq) {
		orientation := "+"
		if m.IsReverse {
			orientation = "-"
		}
		fmt.Printf("%s\t%d\t%s\n", m.Key.Decode(idx.K()), m.Offset, orientation)
	}
	return nil
}
