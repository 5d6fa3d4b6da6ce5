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
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// BulkDirective marks a function for slice generation. It must appear on a
// line of its own in the function's doc comment.
const BulkDirective = "//fluids:bulk"

// GeneratedPrefix marks generated files, which are never scanned.
const GeneratedPrefix = "zz_"

// supportedTypes are the element types a bulk kernel may take or return.
var supportedTypes = []string{"float64", "complex128"}

// BulkFunc is a kernel collected from the input package.
type BulkFunc struct {
	Name   string // kernel name, e.g. "Hypot"
	Arity  int    // 1 or 2
	Elem   string // argument element type
	Result string // result element type
	File   string // base name of the declaring file
}

// SliceName returns the name of the generated slice variant.
func (f BulkFunc) SliceName() string {
	return f.Name + "Slice"
}

// ParseResult contains the kernels collected from one package directory.
type ParseResult struct {
	PackageName string
	Files       []string
	Funcs       []BulkFunc
}

// sourceFiles lists the Go files of dir that belong to the package proper,
// skipping tests and generated files.
func sourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		name := e.Name()
		return name, !e.IsDir() &&
			strings.HasSuffix(name, ".go") &&
			!strings.HasSuffix(name, "_test.go") &&
			!strings.HasPrefix(name, GeneratedPrefix)
	})
	slices.Sort(names)
	return names, nil
}

// ParseDir parses the package in dir and collects its bulk kernels, sorted
// by name.
func ParseDir(dir string) (*ParseResult, error) {
	files, err := sourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Go source files in %s", dir)
	}

	result := &ParseResult{Files: files}
	fset := token.NewFileSet()
	for _, name := range files {
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse file: %w", err)
		}
		switch {
		case result.PackageName == "":
			result.PackageName = file.Name.Name
		case result.PackageName != file.Name.Name:
			return nil, fmt.Errorf("%s: package %s, want %s", name, file.Name.Name, result.PackageName)
		}

		funcs, err := collectFuncs(fset, file)
		if err != nil {
			return nil, err
		}
		for i := range funcs {
			funcs[i].File = name
		}
		result.Funcs = append(result.Funcs, funcs...)
	}

	if dups := lo.FindDuplicates(lo.Map(result.Funcs, func(f BulkFunc, _ int) string { return f.Name })); len(dups) > 0 {
		return nil, fmt.Errorf("duplicate bulk functions: %s", strings.Join(dups, ", "))
	}
	slices.SortFunc(result.Funcs, func(a, b BulkFunc) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result, nil
}

// hasBulkDirective reports whether doc contains the directive line.
func hasBulkDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	return lo.ContainsBy(doc.List, func(c *ast.Comment) bool {
		return strings.TrimSpace(c.Text) == BulkDirective
	})
}

// collectFuncs returns the annotated functions of file. An annotated
// function with an unsupported shape is an error rather than being skipped.
func collectFuncs(fset *token.FileSet, file *ast.File) ([]BulkFunc, error) {
	var funcs []BulkFunc
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !hasBulkDirective(fn.Doc) {
			continue
		}
		bf, err := bulkSignature(fn)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", fset.Position(fn.Pos()), fn.Name.Name, err)
		}
		funcs = append(funcs, bf)
	}
	return funcs, nil
}

// bulkSignature checks that fn is func(T) U or func(T, T) U.
func bulkSignature(fn *ast.FuncDecl) (BulkFunc, error) {
	if fn.Recv != nil {
		return BulkFunc{}, fmt.Errorf("methods are not supported")
	}
	if fn.Type.TypeParams != nil && len(fn.Type.TypeParams.List) > 0 {
		return BulkFunc{}, fmt.Errorf("generic functions are not supported")
	}

	params := flattenTypes(fn.Type.Params)
	results := flattenTypes(fn.Type.Results)
	sig := fmt.Sprintf("func(%s) %s", strings.Join(params, ", "), strings.Join(results, ", "))

	if len(params) < 1 || len(params) > 2 || len(results) != 1 {
		return BulkFunc{}, fmt.Errorf("unsupported signature %s", sig)
	}
	if len(lo.Uniq(params)) != 1 {
		return BulkFunc{}, fmt.Errorf("unsupported signature %s: arguments differ in type", sig)
	}
	for _, typ := range []string{params[0], results[0]} {
		if !slices.Contains(supportedTypes, typ) {
			return BulkFunc{}, fmt.Errorf("unsupported signature %s: element type %s", sig, typ)
		}
	}

	return BulkFunc{
		Name:   fn.Name.Name,
		Arity:  len(params),
		Elem:   params[0],
		Result: results[0],
	}, nil
}

// flattenTypes expands a field list into one type string per value, so
// "x, y float64" yields two entries.
func flattenTypes(fields *ast.FieldList) []string {
	if fields == nil {
		return nil
	}
	var types []string
	for _, field := range fields.List {
		typ := typeString(field.Type)
		n := max(len(field.Names), 1)
		for range n {
			types = append(types, typ)
		}
	}
	return types
}

// typeString renders the type expressions a kernel signature can contain.
func typeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return typeString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + typeString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeString(t.Elt)
		}
		return "[...]" + typeString(t.Elt)
	case *ast.Ellipsis:
		return "..." + typeString(t.Elt)
	default:
		return fmt.Sprintf("%T", expr)
	}
}
