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

import "math"

// Csqrt returns the principal square root of z, with a non-negative real
// part and an imaginary part carrying the sign of imag(z), including -0.
//
// Unlike the textbook formula it never overflows for finite z and keeps
// full precision when both components are subnormal.
func Csqrt(z complex128) complex128 {
	re, im := real(z), imag(z)
	switch {
	case math.IsInf(im, 0):
		return complex(math.Inf(1), im)
	case math.IsNaN(re) || math.IsNaN(im):
		return complex(math.NaN(), math.NaN())
	case math.IsInf(re, 1):
		return complex(re, math.Copysign(0, im))
	case math.IsInf(re, -1):
		return complex(0, math.Copysign(math.Inf(1), im))
	case re == 0 && im == 0:
		return complex(0, im)
	}

	ax, ay := math.Abs(re), math.Abs(im)
	var s float64
	if ax < smallestNormal && ay < smallestNormal {
		// hypot(ax, ay) would be subnormal.
		ax = math.Ldexp(ax, sqrtScaleUp)
		s = math.Ldexp(math.Sqrt(ax+Hypot(ax, math.Ldexp(ay, sqrtScaleUp))), sqrtScaleDown)
	} else {
		ax /= 8
		s = 2 * math.Sqrt(ax+Hypot(ax, ay/8))
	}
	d := ay / (2 * s)

	if re >= 0 {
		return complex(s, math.Copysign(d, im))
	}
	return complex(d, math.Copysign(s, im))
}
