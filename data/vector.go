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

// Package data provides the Vector value type used for mean vectors and
// sample vectors throughout the library.
package data

import (
	"github.com/pkg/errors"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance with elements produced
// by successive calls to draw.
func NewRandomVector(len int, draw func() float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = draw()
	}

	return NewVector(vec)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = x * vi
	}

	return res
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := make(Vector, len(v))

	for i, c := range v {
		sum[i] = c + other[i]
	}

	return sum
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	sub := make(Vector, len(v))
	for i, c := range v {
		sub[i] = c - other[i]
	}

	return sub
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.New("vectors should have the same number of elements")
	}

	prod := 0.0
	for i, c := range v {
		prod += c * other[i]
	}

	return prod, nil
}
