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

	"github.com/spf13/cobra"

	"github.com/PierreLesouhaitier/fluids/numerics/special"
)

// NewExpCommand creates the exp command.
func NewExpCommand(opts *RootOptions) *cobra.Command {
	return newRealCommand(opts, "exp X", "e^X, clamped to the largest finite float64", special.TruncExp)
}

// NewLogCommand creates the log command.
func NewLogCommand(opts *RootOptions) *cobra.Command {
	return newRealCommand(opts, "log X", "ln(X), with a finite value at X = 0", special.TruncLog)
}

// NewHypotCommand creates the hypot command.
func NewHypotCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hypot X Y",
		Short: "sqrt(X² + Y²) without intermediate overflow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := ParseFloat(args[0])
			if err != nil {
				return err
			}
			y, err := ParseFloat(args[1])
			if err != nil {
				return err
			}
			return emit(cmd, opts, realEvaluation("hypot", args, special.Hypot(x, y)))
		},
	}
}

// NewAcosCommand creates the acos command.
func NewAcosCommand(opts *RootOptions) *cobra.Command {
	return newComplexCommand(opts, "acos", "principal complex arccosine", special.Cacos)
}

// NewAtanhCommand creates the atanh command.
func NewAtanhCommand(opts *RootOptions) *cobra.Command {
	return newComplexCommand(opts, "atanh", "principal complex inverse hyperbolic tangent", special.Catanh)
}

func newRealCommand(opts *RootOptions, use, short string, fn func(float64) float64) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		x, err := ParseFloat(args[0])
		if err != nil {
			return err
		}
		return emit(cmd, opts, realEvaluation(cmd.Name(), args, fn(x)))
	}
	return cmd
}

func newComplexCommand(opts *RootOptions, name, short string, fn func(complex128) complex128) *cobra.Command {
	return &cobra.Command{
		Use:   name + " RE [IM]",
		Short: short,
		Long: short + ".\n\nIM defaults to +0. Pass -0 to evaluate on the lower side " +
			"of a branch cut.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := ParseFloat(args[0])
			if err != nil {
				return err
			}
			var im float64
			if len(args) == 2 {
				if im, err = ParseFloat(args[1]); err != nil {
					return err
				}
			}
			return emit(cmd, opts, complexEvaluation(name, args, fn(complex(re, im))))
		},
	}
}

func emit(cmd *cobra.Command, opts *RootOptions, ev Evaluation) error {
	if opts.Logger != nil {
		opts.Logger.Debug("evaluated",
			slog.String("op", ev.Op),
			slog.Any("args", ev.Args),
			slog.String("result", ev.Text()))
	}
	return writeOutput(cmd.OutOrStdout(), opts.Format, ev, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, ev.Text())
		return err
	})
}
