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

import (
	"math"

	"github.com/pkg/errors"
)

// Candidate constrains the values a sampler can produce: either a
// scalar or a fixed-length sequence of coordinates. Which of the two a
// concrete sampler yields is decided by its proposal function.
type Candidate interface {
	float64 | []float64
}

// Sampler draws single values from some probability distribution.
type Sampler[T Candidate] interface {
	Draw() (T, error)
}

// LogPDFFloor is the natural logarithm of the smallest positive normal
// float64. A proposal log-density below this floor cannot be
// exponentiated without underflowing to zero, which would make the
// uniform threshold draw degenerate; candidates in that region are
// resampled instead of acceptance-tested.
var LogPDFFloor = math.Log(math.Ldexp(1, -1022))

var (
	// ErrNegativeCount is returned when a negative number of samples
	// is requested.
	ErrNegativeCount = errors.New("sample count must be non-negative")

	// ErrShapeMismatch is returned when a draw's dimensionality
	// disagrees with the shape fixed by the first draw of a batch.
	ErrShapeMismatch = errors.New("draw does not match the batch shape")

	// ErrMaxTrials is returned when the optional trials limit is
	// exhausted without an accepted candidate.
	ErrMaxTrials = errors.New("no candidate accepted within the trials limit")
)

// dim reports the length of a candidate and whether it has one at all.
// Scalars have no length; sequences fix the secondary dimension of a
// sample batch.
func dim[T Candidate](x T) (int, bool) {
	if v, ok := any(x).([]float64); ok {
		return len(v), true
	}
	return 0, false
}
