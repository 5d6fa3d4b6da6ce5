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
	"runtime"

	"github.com/spf13/cobra"

	"github.com/PierreLesouhaitier/fluids/numerics/dispatch"
	"github.com/PierreLesouhaitier/fluids/numerics/special"
)

// Info describes the kernel selection of this process.
type Info struct {
	Level       string `json:"level"`
	HardwareFMA bool   `json:"hardware_fma"`
	NoFMA       bool   `json:"no_fma"`
	Workers     int    `json:"workers"`
	GOARCH      string `json:"goarch"`
	ExpLimit    string `json:"exp_limit"`
	LogZero     string `json:"log_zero"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the selected kernels and numeric limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := Info{
				Level:       dispatch.CurrentName(),
				HardwareFMA: dispatch.HardwareFMA(),
				NoFMA:       opts.Config.NoFMA,
				Workers:     runtime.GOMAXPROCS(0),
				GOARCH:      runtime.GOARCH,
				ExpLimit:    FormatFloat(special.ExpLimit),
				LogZero:     FormatFloat(special.LogZero),
			}
			return writeOutput(cmd.OutOrStdout(), opts.Format, info, func(w io.Writer) error {
				_, err := fmt.Fprintf(w,
					"level:        %s\nhardware fma: %t\nno fma:       %t\nworkers:      %d\ngoarch:       %s\nexp limit:    %s\nlog zero:     %s\n",
					info.Level, info.HardwareFMA, info.NoFMA, info.Workers, info.GOARCH, info.ExpLimit, info.LogZero)
				return err
			})
		},
	}
}
