// Copyright 2025 fluids Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/PierreLesouhaitier/fluids/numerics/special"
	"github.com/PierreLesouhaitier/fluids/numerics/workerpool"
)

// tableFuncs are the kernels the table command can tabulate.
var tableFuncs = map[string]func(float64) float64{
	"exp": special.TruncExp,
	"log": special.TruncLog,
}

// TableRow is one grid point of a table.
type TableRow struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// TableOptions holds flags for the table command.
type TableOptions struct {
	*RootOptions
	Workers int
	Batch   int
}

// NewTableCommand creates the table command.
func NewTableCommand(opts *RootOptions) *cobra.Command {
	tableOpts := &TableOptions{RootOptions: opts}

	names := lo.Keys(tableFuncs)
	slices.Sort(names)

	cmd := &cobra.Command{
		Use:   "table FUNC START STOP N",
		Short: "Tabulate a real primitive on an evenly spaced grid",
		Long: fmt.Sprintf("Tabulate FUNC (one of %v) at N evenly spaced points from START "+
			"to STOP inclusive, evaluating in parallel.", names),
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, tableOpts, args)
		},
	}

	cmd.Flags().IntVarP(&tableOpts.Workers, "workers", "w", 0, "worker goroutines (default GOMAXPROCS)")
	cmd.Flags().IntVar(&tableOpts.Batch, "batch", 0,
		"hand out points in batches of this size as workers free up (default: one contiguous range per worker)")

	return cmd
}

// Grid returns n evenly spaced points from start to stop inclusive.
func Grid(start, stop float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		switch {
		case i == 0:
			xs[i] = start
		case i == n-1:
			xs[i] = stop
		default:
			xs[i] = start + (stop-start)*float64(i)/float64(n-1)
		}
	}
	return xs
}

func runTable(cmd *cobra.Command, opts *TableOptions, args []string) error {
	fn, ok := tableFuncs[args[0]]
	if !ok {
		names := lo.Keys(tableFuncs)
		slices.Sort(names)
		return fmt.Errorf("unknown function %q: must be one of %v", args[0], names)
	}
	start, err := ParseFloat(args[1])
	if err != nil {
		return err
	}
	stop, err := ParseFloat(args[2])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[3])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid point count %q: must be a positive integer", args[3])
	}
	if opts.Batch < 0 {
		return fmt.Errorf("invalid batch size %d: must not be negative", opts.Batch)
	}

	pool := workerpool.New(opts.Workers)
	defer pool.Close()

	began := time.Now()
	xs := Grid(start, stop, n)
	ys := make([]float64, n)
	if opts.Batch > 0 {
		special.ParallelApplyBatched(pool, opts.Batch, xs, ys, fn)
	} else {
		special.ParallelApply(pool, xs, ys, fn)
	}
	if opts.Logger != nil {
		opts.Logger.Debug("tabulated",
			slog.String("func", args[0]),
			slog.Int("points", n),
			slog.Int("workers", pool.Workers()),
			slog.Int("batch", opts.Batch),
			slog.Duration("elapsed", time.Since(began)))
	}

	rows := lo.Map(xs, func(x float64, i int) TableRow {
		return TableRow{X: FormatFloat(x), Y: FormatFloat(ys[i])}
	})
	return writeOutput(cmd.OutOrStdout(), opts.Format, rows, func(w io.Writer) error {
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", r.X, r.Y); err != nil {
				return err
			}
		}
		return nil
	})
}
