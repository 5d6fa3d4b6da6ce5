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

// Command fluidsgen generates slice variants of scalar numeric kernels.
//
// Usage:
//
//	fluidsgen -dir ./numerics/special
//	fluidsgen -dir . -output ./gen -pkg bulk -v
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/fluidsgen -dir .
//
// Every top-level function whose doc comment carries a //fluids:bulk
// directive gets a <Name>Slice counterpart in zz_<pkg>_bulk.go. Supported
// signatures are func(T) U and func(T, T) U with T and U each float64 or
// complex128.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/PierreLesouhaitier/fluids/internal/logging"
	"github.com/PierreLesouhaitier/fluids/numerics/dispatch"
)

var (
	inputDir   = flag.String("dir", ".", "Package directory to scan for //fluids:bulk functions")
	outputDir  = flag.String("output", "", "Output directory (default: same as -dir)")
	packageOut = flag.String("pkg", "", "Output package name (default: same as input)")
	verbose    = flag.Bool("v", false, "Log every collected function")
)

func main() {
	flag.Parse()

	cfg, err := dispatch.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	level := cfg.LogLevel
	if *verbose {
		level = "debug"
	}
	logger, err := logging.New(os.Stderr, level, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen := &Generator{
		InputDir:   *inputDir,
		OutputDir:  *outputDir,
		PackageOut: *packageOut,
		Logger:     logger,
	}
	path, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("generated bulk kernels", slog.String("file", path))
}
