/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

// Dist is the part of a univariate distribution the rejection sampler
// needs: drawing one value and evaluating the log-density at a value.
// The distributions of gonum.org/v1/gonum/stat/distuv satisfy it.
type Dist interface {
	Rand() float64
	LogProb(x float64) float64
}

// NewRejectionDist builds a scalar Rejection sampler proposing from q
// with target density p. The domination obligation q(x) >= p(x) is the
// caller's, as with NewRejection; where the target's natural form
// exceeds the proposal, wrap it with Scaled first.
func NewRejectionDist(q, p Dist, opts ...Option) *Rejection[float64] {
	return NewRejection(q.Rand, q.LogProb, p.LogProb, opts...)
}

// Scaled returns d's log-density shifted by logScale, i.e. the
// log-density of the unnormalized density exp(logScale) * d. Rejection
// sampling is indifferent to normalization, so this is the usual way
// to tuck a target under a flat proposal.
func Scaled(d Dist, logScale float64) func(float64) float64 {
	return func(x float64) float64 {
		return d.LogProb(x) + logScale
	}
}
