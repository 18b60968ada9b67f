//----------------------------------------------------------------------
// This file is part of picalc.
// Copyright (C) 2011-2026 Bernd Fix  >Y<
//
// picalc is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// picalc is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// Command picalc computes pi to a requested number of decimal digits
// using the Chudnovsky algorithm with binary splitting, and writes the
// digit string to a file in grouped blocks.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bfix/picalc/picaerr"
	"github.com/bfix/picalc/picalog"
	"github.com/bfix/picalc/pi"
)

var (
	flagDigits    uint64
	flagThreads   int
	flagMaxDepth  int
	flagOutFile   string
	flagBlockSize int
	flagNumBlocks int
	flagBase      int
	flagDebug     bool
)

func main() {
	root := &cobra.Command{
		Use:   "picalc",
		Short: "Compute pi to N digits with the Chudnovsky algorithm",
		RunE:  run,
	}

	root.Flags().Uint64VarP(&flagDigits, "digits", "d", 1000, "number of digits to calculate")
	root.Flags().IntVarP(&flagThreads, "threads", "t", 0, "number of threads to use (0 = all available)")
	root.Flags().IntVarP(&flagMaxDepth, "max-parallel-depth", "m", 0, "max fork depth (0 = auto)")
	root.Flags().StringVarP(&flagOutFile, "out-file", "o", "pi.txt", "file to write the result to")
	root.Flags().IntVarP(&flagBlockSize, "block-size", "b", 10, "number of digits per block")
	root.Flags().IntVarP(&flagNumBlocks, "num-blocks", "n", 5, "number of blocks per line")
	root.Flags().IntVarP(&flagBase, "base", "B", 10, "output radix, 2-36")
	root.Flags().BoolVar(&flagDebug, "debug", false, "verbose structured logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) (err error) {
	log := picalog.New(flagDebug)
	defer func() {
		if rec := recover(); rec != nil {
			if rerr := picaerr.Recover(rec); rerr != nil {
				err = rerr
				return
			}
			panic(rec)
		}
	}()
	defer log.Sync() //nolint:errcheck

	cfg := pi.Config{
		Digits:           flagDigits,
		Threads:          flagThreads,
		MaxParallelDepth: flagMaxDepth,
		Base:             flagBase,
	}
	if verr := cfg.Validate(); verr != nil {
		return verr
	}

	fmt.Println(color.GreenString("Digits          : ") + color.CyanString(groupThousands(flagDigits)))
	fmt.Println()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.GreenString("Computing pi...")),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stdout),
	)
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				bar.Add(1) //nolint:errcheck
			}
		}
	}()

	start := time.Now()
	res, cerr := pi.Compute(context.Background(), cfg, picalog.Stage(log, "compute"))
	close(stop)
	bar.Finish() //nolint:errcheck
	if cerr != nil {
		return cerr
	}
	fmt.Println(color.GreenString("Done in ") + color.CyanString(time.Since(start).String()))
	fmt.Println()

	fmt.Println(color.GreenString("Precision       : ") + color.CyanString("%d bits", res.PrecisionBits))
	fmt.Println(color.GreenString("Terms           : ") + color.CyanString(groupThousands(res.Terms)))
	fmt.Println(color.GreenString("Threads         : ") + color.CyanString(strconv.Itoa(res.Threads)))
	fmt.Println(color.GreenString("Parallel depth  : ") + color.CyanString(strconv.Itoa(res.MaxParallelDepth)))
	fmt.Println()

	if werr := writeDigits(flagOutFile, res.Digits, flagBlockSize, flagNumBlocks); werr != nil {
		return fmt.Errorf("writing output: %w", werr)
	}
	fmt.Println(color.GreenString("Wrote ") + color.CyanString(flagOutFile))
	return nil
}

// writeDigits writes "3." followed by digits grouped into blockSize-byte
// blocks, numBlocks blocks per line, matching the reference layout.
func writeDigits(path string, digits []byte, blockSize, numBlocks int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := make([]byte, 0, len(digits)+len(digits)/blockSize+4)
	w = append(w, '3', '.')
	lineWidth := blockSize * numBlocks
	for pos, c := range digits {
		switch {
		case lineWidth > 0 && pos%lineWidth == 0:
			w = append(w, '\n', ' ', ' ')
		case blockSize > 0 && pos%blockSize == 0:
			w = append(w, ' ')
		}
		w = append(w, c)
	}
	w = append(w, '\n')
	_, err = f.Write(w)
	return err
}

func groupThousands(n uint64) string {
	s := strconv.FormatUint(n, 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
