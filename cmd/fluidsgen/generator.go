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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"
)

// Generator turns the //fluids:bulk kernels of one package into a
// generated file of slice variants.
type Generator struct {
	InputDir   string       // Package directory to scan
	OutputDir  string       // Output directory (defaults to InputDir)
	PackageOut string       // Output package name (defaults to input package)
	Logger     *slog.Logger // Defaults to slog.Default()
}

// Run parses, emits and writes the bulk file, returning its path.
func (g *Generator) Run() (string, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result, err := ParseDir(g.InputDir)
	if err != nil {
		return "", fmt.Errorf("parse input: %w", err)
	}
	if len(result.Funcs) == 0 {
		return "", fmt.Errorf("no %s functions found in %s", BulkDirective, g.InputDir)
	}
	logger.Debug("scanned package",
		slog.String("package", result.PackageName),
		slog.Any("files", result.Files))
	for _, f := range result.Funcs {
		logger.Debug("bulk kernel",
			slog.String("func", f.Name),
			slog.String("file", f.File),
			slog.String("signature", signature(f)))
	}

	pkg := lo.Ternary(g.PackageOut != "", g.PackageOut, result.PackageName)
	outDir := lo.Ternary(g.OutputDir != "", g.OutputDir, g.InputDir)
	path := filepath.Join(outDir, OutputName(pkg))

	src, err := EmitBulk(pkg, path, result.Funcs)
	if err != nil {
		return "", fmt.Errorf("emit: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func signature(f BulkFunc) string {
	if f.Arity == 2 {
		return fmt.Sprintf("func(%s, %s) %s", f.Elem, f.Elem, f.Result)
	}
	return fmt.Sprintf("func(%s) %s", f.Elem, f.Result)
}
