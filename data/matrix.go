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
	"fmt"

	"github.com/gors-project/gors/sample"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewMatrixFromRows wraps a batch of row slices, as produced by a
// vector-valued sampler, into a Matrix instance.
// It returns error if not all the rows have the same number of elements.
func NewMatrixFromRows(rows [][]float64) (Matrix, error) {
	vectors := make([]Vector, len(rows))
	for i, r := range rows {
		vectors[i] = NewVector(r)
	}

	return NewMatrix(vectors)
}

// NewRandomMatrix returns a new Matrix instance
// with rows drawn by the provided sample.Sampler.
// Returns an error in case of sampling failure, or if the sampler's
// draws disagree in length.
func NewRandomMatrix(rows int, sampler sample.Sampler[[]float64]) (Matrix, error) {
	mat := make([]Vector, rows)

	for i := 0; i < rows; i++ {
		row, err := sampler.Draw()
		if err != nil {
			return nil, err
		}

		mat[i] = NewVector(row)
	}

	return NewMatrix(mat)
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// Col returns the i-th column of matrix m as a Vector.
func (m Matrix) Col(i int) Vector {
	col := make([]float64, len(m))
	for j, v := range m {
		col[j] = v[i]
	}

	return NewVector(col)
}
