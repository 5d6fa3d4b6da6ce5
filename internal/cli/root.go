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

// Package cli implements the fluidsnum command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/PierreLesouhaitier/fluids/internal/logging"
	"github.com/PierreLesouhaitier/fluids/numerics/dispatch"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json"
	LogLevel string // overrides FLUIDS_LOG_LEVEL when set

	Logger *slog.Logger // built in PersistentPreRunE
	Config dispatch.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for fluidsnum.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fluidsnum",
		Short: "Evaluate the fluids numeric primitives",
		Long: "fluidsnum evaluates the overflow-safe exp and log, hypot and the " +
			"branch-cut exact complex arccos and arctanh from the shell.\n\n" +
			"Arguments are parsed as float64, so -0, inf and nan are accepted. " +
			"Put negative arguments after --, as in: fluidsnum atanh -- 2 -0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			cfg, err := dispatch.LoadConfig()
			if err != nil {
				return err
			}
			opts.Config = cfg

			level := cfg.LogLevel
			if opts.LogLevel != "" {
				level = opts.LogLevel
			}
			if opts.Verbose {
				level = "debug"
			}
			stderr := cmd.ErrOrStderr()
			logger, err := logging.New(stderr, level, stderr == os.Stderr)
			if err != nil {
				return err
			}
			opts.Logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (default $FLUIDS_LOG_LEVEL or info)")

	cmd.AddCommand(NewExpCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewHypotCommand(opts))
	cmd.AddCommand(NewAcosCommand(opts))
	cmd.AddCommand(NewAtanhCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))

	return cmd
}
