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

// atanhRegime tags the evaluation strategy Catanh uses for an argument with
// a non-negative real part.
type atanhRegime uint8

const (
	atanhNonFinite atanhRegime = iota // Inf or NaN component
	atanhSmall                        // |re|, |im| < 2^-28: atanh(z) = z
	atanhLarge                        // a component beyond sqrt(MaxFloat64/4)
	atanhPole                         // re == 1, |im| < 1
	atanhGeneral                      // log1p/atan2 form
)

// String returns the regime name used in test output.
func (r atanhRegime) String() string {
	switch r {
	case atanhNonFinite:
		return "non-finite"
	case atanhSmall:
		return "small"
	case atanhLarge:
		return "large"
	case atanhPole:
		return "pole"
	case atanhGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// classifyAtanh expects re >= 0 (or NaN) and ay = |im|.
func classifyAtanh(re, ay float64) atanhRegime {
	switch {
	case math.IsInf(re, 0) || math.IsInf(ay, 0) || math.IsNaN(re) || math.IsNaN(ay):
		return atanhNonFinite
	case re < atanhSmallLimit && ay < atanhSmallLimit:
		return atanhSmall
	case re > sqrtLargeDouble || ay > sqrtLargeDouble:
		return atanhLarge
	case re == 1 && ay < 1:
		// The general form divides by |im|² here, which overflows once
		// |im| nears sqrt(2^-1022).
		return atanhPole
	default:
		return atanhGeneral
	}
}

// Catanh returns the principal value of artanh(z) = ½·ln((1+z)/(1−z)).
//
// The branch cuts are (−∞, −1] and [1, ∞) on the real axis. On a cut the
// sign bit of imag(z) picks the side: Catanh(complex(2, 0)) has imaginary
// part +π/2 and Catanh(complex(2, -0.0)) has −π/2.
//
// Results stay finite and accurate from subnormal to near-overflow
// components. The only infinite results are at the poles:
//
//	Catanh(±1 ± 0i) = ±Inf ± 0i
//
//fluids:bulk
func Catanh(z complex128) complex128 {
	re, im := real(z), imag(z)
	if re < 0 {
		// atanh is odd.
		w := Catanh(complex(-re, -im))
		return complex(-real(w), -imag(w))
	}

	ay := math.Abs(im)
	switch classifyAtanh(re, ay) {
	case atanhNonFinite:
		return atanhSpecial(re, im)

	case atanhSmall:
		return z

	case atanhLarge:
		// atanh(z) ≈ 1/z ± iπ/2. The halving keeps |z|² representable.
		h := Hypot(re/2, im/2)
		return complex(re/4/h/h, cutSign(im)*math.Pi/2)

	case atanhPole:
		if ay == 0 {
			return complex(math.Inf(1), im)
		}
		return complex(
			-math.Log(math.Sqrt(ay)/math.Sqrt(Hypot(ay, 2))),
			cutSign(im)*math.Atan2(2, -ay)/2,
		)
	}

	om := 1 - re
	return complex(
		math.Log1p(4*re/(om*om+ay*ay))/4,
		-math.Atan2(-2*im, om*(1+re)-ay*ay)/2,
	)
}

// atanhSpecial handles Inf and NaN components following C99 Annex G.
func atanhSpecial(re, im float64) complex128 {
	switch {
	case math.IsInf(im, 0):
		return complex(math.Copysign(0, re), math.Copysign(math.Pi/2, im))
	case math.IsInf(re, 0):
		if math.IsNaN(im) {
			return complex(math.Copysign(0, re), im)
		}
		return complex(math.Copysign(0, re), cutSign(im)*math.Pi/2)
	case re == 0 && math.IsNaN(im):
		return complex(re, im)
	}
	return complex(math.NaN(), math.NaN())
}
