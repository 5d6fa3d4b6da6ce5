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

import "github.com/PierreLesouhaitier/fluids/numerics/workerpool"

// ParallelApply evaluates fn over input, storing fn(input[i]) in output[i],
// with the work split across pool. It processes
// min(len(input), len(output)) elements and blocks until all are done.
//
// Slices shorter than workerpool.DefaultGrain run on the calling goroutine.
//
// Example:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	special.ParallelApply(pool, temperatures, factors, special.TruncExp)
func ParallelApply[T, U any](pool *workerpool.Pool, input []T, output []U, fn func(T) U) {
	n := min(len(input), len(output))
	pool.Split(n, workerpool.DefaultGrain, func(start, end int) {
		for i := start; i < end; i++ {
			output[i] = fn(input[i])
		}
	})
}

// ParallelApply2 is ParallelApply for two-argument kernels such as Hypot.
// It processes min(len(x), len(y), len(output)) elements.
func ParallelApply2[T, U any](pool *workerpool.Pool, x, y []T, output []U, fn func(T, T) U) {
	n := min(len(x), len(y), len(output))
	pool.Split(n, workerpool.DefaultGrain, func(start, end int) {
		for i := start; i < end; i++ {
			output[i] = fn(x[i], y[i])
		}
	})
}

// ParallelApplyBatched is ParallelApply with elements handed out in
// batches of batch indices as workers free up, for kernels whose cost per
// element varies. batch < 1 is treated as 1.
func ParallelApplyBatched[T, U any](pool *workerpool.Pool, batch int, input []T, output []U, fn func(T) U) {
	n := min(len(input), len(output))
	pool.Steal(n, batch, func(start, end int) {
		for i := start; i < end; i++ {
			output[i] = fn(input[i])
		}
	})
}
