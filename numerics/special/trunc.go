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

// TruncExp returns e^x, never +Inf.
//
// Arguments above ExpLimit are clamped to it, so any x >= ExpLimit returns
// 1.7976931348622732e308 on every platform. Up to 709 the result is
// identical to math.Exp, including the underflow to 0 for very negative x.
// NaN propagates.
//
//fluids:bulk
func TruncExp(x float64) float64 {
	return TruncExpAt(x, ExpLimit)
}

// TruncExpAt is TruncExp with a caller-chosen clamp. Limits beyond
// ExpLimit yield math.MaxFloat64 instead of +Inf.
func TruncExpAt(x, limit float64) float64 {
	if x > limit {
		x = limit
	}
	if x > expTopBand {
		return expTop(x)
	}
	return math.Exp(x)
}

const (
	// The amd64 math.Exp returns +Inf below ExpLimit, so TruncExp evaluates
	// arguments above expTopBand itself.
	expTopBand = 709.0

	expLn2Hi = 6.93147180369123816490e-01
	expLn2Lo = 1.90821492927058770002e-10
	expLog2e = 1.44269504088896338700e+00

	expP1 = 1.66666666666666657415e-01
	expP2 = -2.77777777770155933842e-03
	expP3 = 6.61375632143793436117e-05
	expP4 = -1.65339022054652515390e-06
	expP5 = 4.13813679705723846039e-08
)

// expTop is e^x for expTopBand < x, using the FreeBSD e_exp.c reduction
// x = k·ln2 + r with ln2 split into hi and lo parts, a Remez polynomial
// for e^r, and a final Ldexp that cannot overflow for x <= ExpLimit.
// It returns math.MaxFloat64 above ExpLimit.
func expTop(x float64) float64 {
	if x > ExpLimit {
		return math.MaxFloat64
	}
	k := int(expLog2e*x + 0.5)
	hi := x - float64(k)*expLn2Hi
	lo := float64(k) * expLn2Lo

	r := hi - lo
	t := r * r
	c := r - t*(expP1+t*(expP2+t*(expP3+t*(expP4+t*expP5))))
	y := 1 - ((lo - (r*c)/(2-c)) - hi)
	return math.Ldexp(y, k)
}

// TruncLog returns ln(x), with TruncLog(±0) = LogZero instead of -Inf.
//
// LogZero is finite and below TruncLog of the smallest subnormal, so the
// function stays monotonic on [0, +Inf). Negative x returns NaN.
//
//fluids:bulk
func TruncLog(x float64) float64 {
	return TruncLogAt(x, LogZero)
}

// TruncLogAt is TruncLog with a caller-chosen value at zero.
func TruncLogAt(x, floor float64) float64 {
	if x == 0 {
		return floor
	}
	return math.Log(x)
}
