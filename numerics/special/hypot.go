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

package special

import (
	"math"

	"github.com/PierreLesouhaitier/fluids/numerics/dispatch"
)

// hypotKernel computes sqrt(p² + q²) for finite p >= q > 0.
// Set by init() from the dispatch level.
var hypotKernel = hypotScaled

func init() {
	if dispatch.HasFMA() {
		hypotKernel = hypotFused
	}
}

// Hypot returns sqrt(x² + y²), avoiding overflow and underflow in the
// squares.
//
// Special cases are:
//
//	Hypot(±Inf, y) = +Inf
//	Hypot(x, ±Inf) = +Inf
//	Hypot(NaN, y) = NaN
//	Hypot(x, NaN) = NaN
//	Hypot(x, 0) = |x|
//
//fluids:bulk
func Hypot(x, y float64) float64 {
	switch {
	case math.IsInf(x, 0) || math.IsInf(y, 0):
		return math.Inf(1)
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	}
	p, q := math.Abs(x), math.Abs(y)
	if p < q {
		p, q = q, p
	}
	if q == 0 {
		return p
	}
	return hypotKernel(p, q)
}

// hypotScaled is the ratio form p·sqrt(1 + (q/p)²). q/p <= 1, so nothing
// overflows unless the result does.
func hypotScaled(p, q float64) float64 {
	r := q / p
	return p * math.Sqrt(1+r*r)
}

// hypotFused rescales by a power of two into a range where the squares are
// safe, then applies one FMA correction step to the square root.
// See C. F. Borges, "An Improved Algorithm for hypot(a,b)", 2019.
func hypotFused(p, q float64) float64 {
	scale := 1.0
	switch {
	case p > 0x1p500:
		p *= 0x1p-600
		q *= 0x1p-600
		scale = 0x1p600
	case p < 0x1p-500:
		p *= 0x1p600
		q *= 0x1p600
		scale = 0x1p-600
	}
	h := math.Sqrt(math.FMA(p, p, q*q))
	hh, pp := h*h, p*p
	h -= (math.FMA(-q, q, hh-pp) + math.FMA(h, h, -hh) - math.FMA(p, p, -pp)) / (2 * h)
	return h * scale
}
