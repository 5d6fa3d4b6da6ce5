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
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"
)

// GeneratedHeader opens every generated file.
const GeneratedHeader = "// Code generated by fluidsgen. DO NOT EDIT."

// OutputName returns the generated file name for package pkg.
func OutputName(pkg string) string {
	return fmt.Sprintf("%s%s_bulk.go", GeneratedPrefix, pkg)
}

// EmitBulk renders the slice variants of funcs as a formatted Go file in
// package pkg. filename is only used to resolve imports.
func EmitBulk(pkg, filename string, funcs []BulkFunc) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\npackage %s\n", GeneratedHeader, pkg)

	for _, f := range funcs {
		buf.WriteString("\n")
		switch f.Arity {
		case 1:
			emitUnary(&buf, f)
		case 2:
			emitBinary(&buf, f)
		default:
			return nil, fmt.Errorf("%s: unsupported arity %d", f.Name, f.Arity)
		}
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return formatted, nil
}

// sliceParams joins the slice parameters, sharing the type where the
// element types agree.
func sliceParams(inputs []string, elem, result string) string {
	var b bytes.Buffer
	for i, name := range inputs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
	}
	if elem == result {
		fmt.Fprintf(&b, ", output []%s", result)
		return b.String()
	}
	fmt.Fprintf(&b, " []%s, output []%s", elem, result)
	return b.String()
}

func emitUnary(buf *bytes.Buffer, f BulkFunc) {
	fmt.Fprintf(buf, "// %s applies %s to each element of input, storing results in output.\n", f.SliceName(), f.Name)
	fmt.Fprintf(buf, "// It processes min(len(input), len(output)) elements.\n")
	fmt.Fprintf(buf, "func %s(%s) {\n", f.SliceName(), sliceParams([]string{"input"}, f.Elem, f.Result))
	fmt.Fprintf(buf, "\tn := min(len(input), len(output))\n")
	fmt.Fprintf(buf, "\tfor i := 0; i < n; i++ {\n")
	fmt.Fprintf(buf, "\t\toutput[i] = %s(input[i])\n", f.Name)
	fmt.Fprintf(buf, "\t}\n}\n")
}

func emitBinary(buf *bytes.Buffer, f BulkFunc) {
	fmt.Fprintf(buf, "// %s applies %s to each pair x[i], y[i], storing results in output.\n", f.SliceName(), f.Name)
	fmt.Fprintf(buf, "// It processes min(len(x), len(y), len(output)) elements.\n")
	fmt.Fprintf(buf, "func %s(%s) {\n", f.SliceName(), sliceParams([]string{"x", "y"}, f.Elem, f.Result))
	fmt.Fprintf(buf, "\tn := min(len(x), len(y), len(output))\n")
	fmt.Fprintf(buf, "\tfor i := 0; i < n; i++ {\n")
	fmt.Fprintf(buf, "\t\toutput[i] = %s(x[i], y[i])\n", f.Name)
	fmt.Fprintf(buf, "\t}\n}\n")
}
