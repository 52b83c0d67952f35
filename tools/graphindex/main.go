// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./tools/graphindex <command> <flags>

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var (
	kFlag = cli.IntFlag{
		Name:  "k",
		Usage: "kmer length",
		Value: 21,
	}
	wFlag = cli.IntFlag{
		Name:  "w",
		Usage: "window length in kmers",
		Value: 11,
	}
)

func main() {
	app := &cli.App{
		Name:  "graphindex",
		Usage: "minimizer index and path cover toolbox",
		Commands: []*cli.Command{
			&Extract,
			&Build,
			&Inspect,
			&Cover,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
