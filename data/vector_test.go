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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"github.com/gors-project/gors/sample"
)

func flatSampler(rng *rand.Rand) *sample.Rejection[float64] {
	flat := func(x float64) float64 { return 0 }
	return sample.NewRejection(rng.Float64, flat, flat, sample.WithRand(rng))
}

func TestVector(t *testing.T) {
	l := 3
	rng := rand.New(rand.NewSource(4))

	x, err := NewRandomVector(l, flatSampler(rng))
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}
	assert.Equal(t, l, len(x), "vector should have the requested length")

	v := NewVector([]float64{1, 2, 3})
	assert.Equal(t, 2.0, v.Mean(), "mean should calculate correctly")
	assert.Equal(t, 1.0, v.StdDev(), "standard deviation should calculate correctly")

	min, max := v.MinMax()
	assert.Equal(t, 1.0, min, "minimum should calculate correctly")
	assert.Equal(t, 3.0, max, "maximum should calculate correctly")

	c := NewConstantVector(4, 2.5)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 2.5, c[i], "all coordinates should equal the constant")
	}
}

func TestVector_Empty(t *testing.T) {
	v := NewVector(nil)
	min, max := v.MinMax()
	assert.True(t, math.IsNaN(min), "empty vector has no minimum")
	assert.True(t, math.IsNaN(max), "empty vector has no maximum")
}
