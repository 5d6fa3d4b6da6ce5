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

// Package special provides scalar and complex float64 primitives that stay
// finite where the standard routines overflow, and complex inverse functions
// that follow the principal-branch conventions exactly, including the sign of
// zero on the branch cuts.
//
// These are the building blocks for equation-of-state and property
// correlations, where an Inf or NaN produced by exp or log silently poisons
// a nonlinear solver instead of letting its convergence checks reject the
// iterate.
//
// # Scalar functions
//
//   - TruncExp(x) - e^x, clamped to the largest finite result
//   - TruncLog(x) - ln(x), with a finite sentinel at zero
//   - Hypot(x, y) - sqrt(x² + y²) without intermediate overflow
//
// # Complex functions
//
//   - Cacos(z)  - principal arccosine
//   - Catanh(z) - principal inverse hyperbolic tangent
//   - Csqrt(z)  - principal square root, subnormal safe
//
// # Bulk evaluation
//
// Every kernel has a Slice variant (generated by cmd/fluidsgen) that maps it
// over whole slices, and ParallelApply/ParallelApply2 spread the same work
// across a workerpool.Pool.
//
// All functions are pure and safe for concurrent use.
package special

//go:generate go run ../../cmd/fluidsgen -dir .

import "math"

const (
	// ExpLimit is the largest argument for which math.Exp is finite.
	// TruncExp clamps its argument here.
	ExpLimit = 709.782712893384

	// LogZero is returned by TruncLog(0). It equals ln(2^-1075), below
	// ln(5e-324) = -744.4400719213812, so ordering is preserved.
	LogZero = -745.1332191019412
)

const (
	smallestNormal = 0x1p-1022

	// largeDouble is MaxFloat64/4, above which Cacos switches to the
	// overflow-free asymptotic form.
	largeDouble = math.MaxFloat64 / 4

	// sqrtLargeDouble is sqrt(MaxFloat64/4).
	sqrtLargeDouble = 6.703903964971298e+153

	// Below this magnitude atanh(z) rounds to z.
	atanhSmallLimit = 0x1p-28

	// Csqrt rescales subnormal arguments by 2^53 and undoes it on the root.
	sqrtScaleUp   = 53
	sqrtScaleDown = -27
)

// IsNegZero reports whether x is -0.0. Unlike x < 0 it distinguishes the two
// zeros, which select opposite sides of a branch cut.
func IsNegZero(x float64) bool {
	return x == 0 && math.Signbit(x)
}

// cutSign returns -1 when im places a point on the lower side of a
// real-axis branch cut and +1 otherwise.
func cutSign(im float64) float64 {
	if im < 0 || IsNegZero(im) {
		return -1
	}
	return 1
}
