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

// Package numtest holds the tolerance comparisons shared by the numerics
// tests. A comparison passes when |got − want| <= atol + rtol·|want|, at
// every magnitude including subnormals; rtol = atol = 0 demands equal
// values (with -0 equal to +0).
package numtest

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Close reports whether got is within (rtol, atol) of want.
// Two NaNs compare equal; infinities must match exactly.
func Close(got, want, rtol, atol float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return math.IsNaN(got) && math.IsNaN(want)
	}
	if math.IsInf(got, 0) || math.IsInf(want, 0) {
		return got == want
	}
	return scalar.EqualWithinAbs(got, want, atol+rtol*math.Abs(want))
}

// AssertClose fails t when got is not Close to want.
func AssertClose(t testing.TB, name string, got, want, rtol, atol float64) bool {
	t.Helper()
	if Close(got, want, rtol, atol) {
		return true
	}
	t.Errorf("%s = %v, want %v (rtol=%g, atol=%g)", name, got, want, rtol, atol)
	return false
}

// AssertCloseComplex compares real and imaginary parts independently.
func AssertCloseComplex(t testing.TB, name string, got, want complex128, rtol, atol float64) bool {
	t.Helper()
	okRe := AssertClose(t, "real("+name+")", real(got), real(want), rtol, atol)
	okIm := AssertClose(t, "imag("+name+")", imag(got), imag(want), rtol, atol)
	return okRe && okIm
}

// SameSign reports whether a and b have the same sign bit. It tells -0
// from +0.
func SameSign(a, b float64) bool {
	return math.Signbit(a) == math.Signbit(b)
}
