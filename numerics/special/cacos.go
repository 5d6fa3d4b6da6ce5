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

// acosRegime tags the evaluation strategy Cacos uses for an argument.
type acosRegime uint8

const (
	acosNaN     acosRegime = iota // a NaN component
	acosLarge                     // a component beyond MaxFloat64/4
	acosGeneral                   // everything else
)

func classifyAcos(re, im float64) acosRegime {
	switch {
	case math.IsNaN(re) || math.IsNaN(im):
		return acosNaN
	case math.Abs(re) > largeDouble || math.Abs(im) > largeDouble:
		return acosLarge
	default:
		return acosGeneral
	}
}

// Cacos returns the principal value of arccos(z): real part in [0, π].
//
// The general case is 2·atan2(Re√(1−z), Re√(1+z)) for the real part and
// asinh(Im(√(1+z̄)·√(1−z))) for the imaginary part, which keeps full
// relative precision next to the branch points ±1 where the log form
// cancels. 1−z and 1+z use ordinary complex arithmetic, so for real
// x > 1 the result is +i·acosh(x):
//
//	Cacos(1.0000000000000033) ≈ 8.16170211889097e-08i
//
// Arguments beyond MaxFloat64/4 use arccos(z) ≈ -i·ln(2z), with the same
// real-axis signs as the general case.
//
//fluids:bulk
func Cacos(z complex128) complex128 {
	re, im := real(z), imag(z)
	switch classifyAcos(re, im) {
	case acosNaN:
		return complex(math.NaN(), math.NaN())
	case acosLarge:
		r := math.Atan2(math.Abs(im), re)
		m := math.Log(Hypot(re/2, im/2)) + 2*math.Ln2
		if im == 0 {
			// On the real axis the general form ignores the zero's sign:
			// +acosh(x) for x > 1 and -acosh(-x) for x < -1.
			if re < 0 {
				return complex(r, -m)
			}
			return complex(r, m)
		}
		return complex(r, math.Copysign(m, -im))
	}

	s1 := Csqrt(1 - z)
	s2 := Csqrt(1 + z)
	return complex(
		2*math.Atan2(real(s1), real(s2)),
		math.Asinh(real(s2)*imag(s1)-imag(s2)*real(s1)),
	)
}
