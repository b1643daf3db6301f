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

package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"github.com/gors-project/gors/sample"
)

func TestMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	propose := func() []float64 {
		return []float64{rng.Float64(), rng.Float64()}
	}
	flat := func(x []float64) float64 { return 0 }
	s := sample.NewRejection(propose, flat, flat, sample.WithRand(rng))

	m, err := NewRandomMatrix(4, s)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	assert.Equal(t, 4, m.Rows(), "matrix should have the requested number of rows")
	assert.Equal(t, 2, m.Cols(), "matrix should have the sampler's dimension")
	assert.Equal(t, 4, len(m.Col(1)), "column should have one element per row")
}

func TestMatrix_Ragged(t *testing.T) {
	_, err := NewMatrix([]Vector{
		NewVector([]float64{1, 2}),
		NewVector([]float64{3}),
	})
	assert.Error(t, err, "rows of unequal length should be rejected")

	_, err = NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})
	assert.NoError(t, err, "equal rows should be accepted")
}
