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
	"golang.org/x/exp/rand"
)

// Rejection samples values from a target distribution p, known only
// through its log-density, by drawing candidates from a proposal
// distribution q and accepting each one with probability p(x)/q(x).
//
// The proposal's density must upper-bound the target's density
// everywhere, i.e. q(x) >= p(x) for every reachable x. This domination
// requirement is a caller obligation: it is never validated, and
// violating it silently biases the produced samples or makes Draw spin
// without ever accepting. The target density need not be normalized as
// long as domination holds.
//
// A Rejection instance is not safe for concurrent use: all draws of a
// batch share one generator, and Seed mutates that generator in place.
type Rejection[T Candidate] struct {
	propose       func() T
	proposeLogPDF func(T) float64
	targetLogPDF  func(T) float64

	rng       *rand.Rand
	maxTrials int

	samples []T
}

type options struct {
	rng       *rand.Rand
	maxTrials int
}

// Option configures a Rejection sampler at construction time.
type Option func(*options)

// WithRand sets the generator used for the uniform threshold draws and
// reseeded by Seed and SampleSeed. Callers who need a reproducible
// batch should pass the same generator their proposal function draws
// from. When omitted, a package-shared generator is used, so seeding
// is visible to every other sampler that also omitted it.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithMaxTrials bounds the number of candidates a single Draw may
// reject before giving up with ErrMaxTrials. The limit is off by
// default, matching the classic algorithm, and exists to keep tests of
// pathological proposal/target pairs from spinning forever.
func WithMaxTrials(n int) Option {
	return func(o *options) {
		o.maxTrials = n
	}
}

// defaultRand backs every sampler constructed without WithRand. It
// plays the role of the process-wide generator: one shared, seedable
// stream of randomness.
var defaultRand = rand.New(rand.NewSource(uint64(1)))

// NewRejection returns an instance of the Rejection sampler for the
// target distribution described by targetLogPDF. Candidates are drawn
// by propose, and proposeLogPDF must report the proposal's log-density
// at any value propose can return. The three functions are never
// validated against each other; see the domination note on Rejection.
func NewRejection[T Candidate](propose func() T, proposeLogPDF, targetLogPDF func(T) float64, opts ...Option) *Rejection[T] {
	o := options{rng: defaultRand}
	for _, opt := range opts {
		opt(&o)
	}

	return &Rejection[T]{
		propose:       propose,
		proposeLogPDF: proposeLogPDF,
		targetLogPDF:  targetLogPDF,
		rng:           o.rng,
		maxTrials:     o.maxTrials,
	}
}

// Draw samples a single value from the target distribution.
//
// Each iteration draws a candidate x from the proposal, a threshold t
// uniformly from [0, q(x)), and accepts x iff log(t) < log p(x).
// Candidates whose proposal log-density lies below LogPDFFloor are
// resampled without an acceptance test, since exp would underflow.
// The loop is unbounded unless WithMaxTrials was given: with an
// acceptance probability of zero almost everywhere it never returns.
func (s *Rejection[T]) Draw() (T, error) {
	for trial := 1; ; trial++ {
		x := s.propose()

		u := s.proposeLogPDF(x)
		if u >= LogPDFFloor {
			// t ~ Uniform(0, exp(u)); the comparison happens on
			// log(t) itself, not on a transformation of u, so the
			// rounding of the uniform primitive carries through.
			t := s.rng.Float64() * math.Exp(u)
			if math.Log(t) < s.targetLogPDF(x) {
				return x, nil
			}
		}

		if s.maxTrials > 0 && trial >= s.maxTrials {
			var zero T
			return zero, errors.Wrapf(ErrMaxTrials, "%d trials", s.maxTrials)
		}
	}
}

// Sample draws n values from the target distribution and returns them
// as a freshly allocated buffer, which also replaces the buffer held
// by the sampler from any earlier batch.
//
// The buffer's shape follows the first draw: a scalar first draw
// yields a flat buffer of n values, a length-d first draw yields n
// rows of d coordinates. Every later draw must match that shape, or
// the whole batch fails with ErrShapeMismatch and no buffer at all.
// n = 0 is valid and yields an empty buffer without drawing; n < 0
// fails with ErrNegativeCount before the proposal is ever invoked.
func (s *Rejection[T]) Sample(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "requested %d", n)
	}

	buf := make([]T, n)
	if n == 0 {
		s.samples = buf
		return buf, nil
	}

	// The first draw determines the secondary dimension, if any.
	first, err := s.Draw()
	if err != nil {
		return nil, err
	}
	d, dimensioned := dim(first)
	buf[0] = first

	for i := 1; i < n; i++ {
		x, err := s.Draw()
		if err != nil {
			return nil, err
		}
		if dimensioned {
			if dx, _ := dim(x); dx != d {
				return nil, errors.Wrapf(ErrShapeMismatch, "draw %d has length %d, batch has %d", i, dx, d)
			}
		}
		buf[i] = x
	}

	s.samples = buf
	return buf, nil
}

// SampleSeed reseeds the sampler's generator and then draws n values
// exactly as Sample does. Two calls with the same seed produce
// identical buffers, provided the proposal function draws its own
// randomness from the same generator.
//
// Seeding mutates shared generator state: any later draw from the same
// generator, by this sampler or another consumer, observes it.
func (s *Rejection[T]) SampleSeed(n int, seed uint64) ([]T, error) {
	s.rng.Seed(seed)
	return s.Sample(n)
}

// Seed reseeds the sampler's generator without drawing. It is not
// reentrant with respect to other consumers of the same generator.
func (s *Rejection[T]) Seed(seed uint64) {
	s.rng.Seed(seed)
}

// Samples returns the buffer produced by the most recent successful
// Sample or SampleSeed call, or nil if no batch has been drawn yet.
// The buffer is owned by the sampler and must not be modified.
func (s *Rejection[T]) Samples() []T {
	return s.samples
}

// ProposalLogPDF evaluates the proposal's log-density at x.
func (s *Rejection[T]) ProposalLogPDF(x T) float64 {
	return s.proposeLogPDF(x)
}

// TargetLogPDF evaluates the target's log-density at x.
func (s *Rejection[T]) TargetLogPDF(x T) float64 {
	return s.targetLogPDF(x)
}
