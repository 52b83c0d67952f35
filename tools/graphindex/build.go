package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/pangraph/graphindex/common"
	"github.com/pangraph/graphindex/minimizer"
	"github.com/pangraph/graphindex/minimizer/ldb"
)

var Build = cli.Command{
	Action: build,
	Name:   "build",
	Usage:  "builds a minimizer index from FASTA sequences and serializes it",
	Flags: []cli.Flag{
		&kFlag,
		&wFlag,
		&outFlag,
		&ldbFlag,
	},
	ArgsUsage: "<sequences.fa>",
}

var (
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "target file for the serialized index",
		Value: "minimizers.gmin",
	}
	ldbFlag = cli.StringFlag{
		Name:  "ldb",
		Usage: "directory for an additional on-disk position store, disabled if empty",
		Value: "",
	}
)

func build(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing sequence file")
	}
	sequences, err := readFasta(context.Args().Get(0))
	if err != nil {
		return err
	}

	var store *ldb.Store
	if dir := context.String(ldbFlag.Name); dir != "" {
		store, err = ldb.Open(dir)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	// Each input sequence becomes one node; the minimizer offset becomes
	// the node offset of the position.
	idx := minimizer.New(context.Int(kFlag.Name), context.Int(wFlag.Name))
	for i, seq := range sequences {
		id := common.NodeID(i + 1)
		for _, m := range idx.Minimizers(seq) {
			pos := common.EncodePosition(id, m.IsReverse, m.Offset)
			idx.Insert(m, pos)
			if store != nil {
				if err := store.Add(m.Key, pos); err != nil {
					return err
				}
			}
		}
	}

	out, err := os.Create(context.String(outFlag.Name))
	if err != nil {
		return err
	}
	defer out.Close()
	if err := idx.Serialize(out); err != nil {
		return err
	}

	digest, err := idx.Digest()
	if err != nil {
		return err
	}
	logger.Info().
		Int("sequences", len(sequences)).
		Int("keys", idx.Size()).
		Int("values", idx.Values()).
		Hex("digest", digest[:]).
		Msg("index built")
	return nil
}

// readFasta reads a FASTA file into one byte sequence per record.
// Bare sequence lines without a header are treated as one record each.
func readFasta(path string) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var sequences [][]byte
	var current []byte
	inRecord := false
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if inRecord {
				sequences = append(sequences, current)
			}
			current = nil
			inRecord = true
			continue
		}
		if inRecord {
			current = append(current, line...)
		} else {
			sequences = append(sequences, []byte(line))
		}
	}
	if inRecord {
		sequences = append(sequences, current)
	}
	return sequences, scanner.Err()
}
