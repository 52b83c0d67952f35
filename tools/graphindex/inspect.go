package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pangraph/graphindex/minimizer"
)

var Inspect = cli.Command{
	Action:    inspect,
	Name:      "inspect",
	Usage:     "prints the parameters and statistics of a serialized index",
	ArgsUsage: "<index.gmin>",
}

func inspect(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing index file")
	}
	file, err := os.Open(context.Args().Get(0))
	if err != nil {
		return err
	}
	defer file.Close()

	idx := minimizer.NewDefault()
	if err := idx.Deserialize(file); err != nil {
		return err
	}
	digest, err := idx.Digest()
	if err != nil {
		return err
	}

	fmt.Printf("Minimizer index with the following properties:\n")
	fmt.Printf("\tKmer length:   %d\n", idx.K())
	fmt.Printf("\tWindow length: %d\n", idx.W())
	fmt.Printf("\tKeys:          %d\n", idx.Size())
	fmt.Printf("\tValues:        %d\n", idx.Values())
	fmt.Printf("\tUnique keys:   %d\n", idx.UniqueKeys())
	fmt.Printf("\tKey capacity:  %d\n", idx.MaxKeys())
	fmt.Printf("\tDigest:        %x\n", digest)
	return nil
}
