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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Evaluation is one evaluated primitive. Numbers are kept as strings so
// that NaN, ±Inf and -0 survive JSON encoding.
type Evaluation struct {
	Op     string   `json:"op"`
	Args   []string `json:"args"`
	Result string   `json:"result,omitempty"` // real results
	Re     string   `json:"re,omitempty"`     // complex results
	Im     string   `json:"im,omitempty"`
}

// FormatFloat renders x in the shortest form that parses back to the same
// float64, keeping the sign of zero.
func FormatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// ParseFloat parses a float64 argument. It accepts "-0", "inf" and "nan".
func ParseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return x, nil
}

func realEvaluation(op string, args []string, y float64) Evaluation {
	return Evaluation{Op: op, Args: args, Result: FormatFloat(y)}
}

func complexEvaluation(op string, args []string, w complex128) Evaluation {
	return Evaluation{Op: op, Args: args, Re: FormatFloat(real(w)), Im: FormatFloat(imag(w))}
}

// Text renders the evaluation result alone.
func (e Evaluation) Text() string {
	if e.Result != "" {
		return e.Result
	}
	im := e.Im
	if im[0] != '-' && im[0] != '+' {
		im = "+" + im
	}
	return "(" + e.Re + im + "i)"
}

// writeOutput prints v as indented JSON or, for text, calls text.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
	return text(w)
}
