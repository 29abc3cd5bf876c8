// Copyright 2025 go-quadrature Authors
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

// Package quad implements composite Simpson (1/3) quadrature over
// one-dimensional domains.
//
// The package covers three calling modes:
//
//   - Continuous: integrate a callable over [a, b] with a subdivision count
//     given per call (Simpson) or bound at construction (Rule).
//   - Discretized, non-uniform: integrate (x, y) sample pairs with arbitrary
//     strictly monotonic spacing (SimpsonSamples).
//   - Discretized, uniform: integrate y samples with a fixed step
//     (SimpsonUniform).
//
// Simpson's rule consumes samples in groups of three, so it natively wants an
// odd sample count. Inputs with an even count are handled by fitting a
// quadratic through the last three samples and integrating it over the final
// pair only, so every consecutive pair of samples is covered by exactly one
// contribution regardless of parity.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-quadrature/quad"
//
//	// ∫₀¹ x² dx with 100 subdivisions
//	v := quad.Simpson(func(x float64) float64 { return x * x }, 0, 1, 100)
//
//	// Discretized samples, uniform spacing
//	v = quad.SimpsonUniformSlice([]float64{0, 1, 4, 9}, 1)
//
// All functions are pure: they never mutate their inputs and hold no state, so
// concurrent calls are safe whenever the supplied containers and callables are
// safe for concurrent reads.
//
// Preconditions (mismatched container lengths, fewer than three samples,
// duplicate abscissas, non-positive subdivision counts) are the caller's
// responsibility and are not checked at runtime; violating them is undefined
// behavior. This keeps the hot paths free of branches that every correct
// caller would pay for.
package quad
