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

// Command fluidsnum evaluates the fluids numeric primitives from the shell.
//
// Usage:
//
//	fluidsnum exp 1000
//	fluidsnum atanh -- 2 -0
//	fluidsnum --format json acos 1.0000000000000033
//	fluidsnum table exp -- -5 5 11
//	fluidsnum info
//
// Set FLUIDS_NO_FMA=1 to force the portable kernels and FLUIDS_LOG_LEVEL to
// change the log level.
package main

import (
	"fmt"
	"os"

	"github.com/PierreLesouhaitier/fluids/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
