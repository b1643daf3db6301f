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

// Package viz renders the output of a rejection sampler: a normalized
// histogram of the drawn samples with the proposal and target density
// curves laid over it. It has no algorithmic content; it only consumes
// the sampler's stored buffer and its two log-densities.
package viz

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/gors-project/gors/data"
	"github.com/gors-project/gors/sample"
)

var (
	// ErrNoSamples is returned when the sampler has not produced a
	// batch yet.
	ErrNoSamples = errors.New("no samples have been drawn yet")

	// ErrMultiDim is returned for sample buffers with more than one
	// column, which have no single-axis histogram.
	ErrMultiDim = errors.New("samples have more than one column")
)

// Hist builds a plot of the sampler's most recent batch over [xMin,
// xMax] with the vertical axis clipped at yMax: a histogram of the
// samples, normalized to unit area, together with the proposal and
// target densities. Sample must have been called first, and the stored
// buffer must be scalar or single-column.
func Hist[T sample.Candidate](s *sample.Rejection[T], xMin, xMax, yMax float64) (*plot.Plot, error) {
	buf := s.Samples()
	if buf == nil {
		return nil, ErrNoSamples
	}

	vals, err := scalars(buf)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Rejection sampling"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "density"

	h, err := plotter.NewHist(plotter.Values(vals), 50)
	if err != nil {
		return nil, errors.Wrap(err, "error building histogram")
	}
	h.Normalize(1)
	p.Add(h)

	q := plotter.NewFunction(density(s.ProposalLogPDF))
	q.Samples = 200
	q.Color = color.RGBA{R: 196, A: 255}

	tgt := plotter.NewFunction(density(s.TargetLogPDF))
	tgt.Samples = 200
	tgt.Color = color.RGBA{B: 196, A: 255}

	p.Add(q, tgt)
	p.Legend.Add("proposal", q)
	p.Legend.Add("target", tgt)

	p.X.Min, p.X.Max = xMin, xMax
	p.Y.Min, p.Y.Max = 0, yMax

	return p, nil
}

// scalars flattens a sample buffer to plain values. Single-column
// matrices flatten to their only column; wider ones are rejected.
func scalars[T sample.Candidate](buf []T) ([]float64, error) {
	switch rows := any(buf).(type) {
	case []float64:
		return rows, nil
	case [][]float64:
		m, err := data.NewMatrixFromRows(rows)
		if err != nil {
			return nil, err
		}
		if m.Cols() != 1 {
			return nil, errors.Wrapf(ErrMultiDim, "%d columns", m.Cols())
		}
		return m.Col(0), nil
	}

	return nil, errors.New("unsupported sample buffer")
}

// density lifts a log-density over T into a plottable density over
// plain values, exponentiating back out of log space.
func density[T sample.Candidate](logPDF func(T) float64) func(float64) float64 {
	return func(x float64) float64 {
		var arg T
		switch p := any(&arg).(type) {
		case *float64:
			*p = x
		case *[]float64:
			*p = []float64{x}
		}

		return math.Exp(logPDF(arg))
	}
}
