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

package data_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcatteeu/cl-random/data"
)

func TestNewRandomVector(t *testing.T) {
	i := 0.0
	v := data.NewRandomVector(4, func() float64 {
		i++
		return i
	})
	assert.Equal(t, data.NewVector([]float64{1, 2, 3, 4}), v)
}

func TestNewConstantVector(t *testing.T) {
	v := data.NewConstantVector(3, 2.5)
	assert.Equal(t, data.NewVector([]float64{2.5, 2.5, 2.5}), v)
}

func TestVectorCopy(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3})
	w := v.Copy()
	w[0] = 100
	assert.Equal(t, 1.0, v[0])
	assert.Equal(t, 100.0, w[0])
}

func TestVectorMulScalar(t *testing.T) {
	v := data.NewVector([]float64{1, -2, 0.5})
	assert.Equal(t, data.NewVector([]float64{2, -4, 1}), v.MulScalar(2))
	assert.Equal(t, data.NewVector([]float64{1, -2, 0.5}), v)
}

func TestVectorApply(t *testing.T) {
	v := data.NewVector([]float64{0, 1, 4})
	assert.Equal(t, data.NewVector([]float64{0, 1, 2}), v.Apply(math.Sqrt))
}

func TestVectorAddSub(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3})
	w := data.NewVector([]float64{10, 20, 30})
	assert.Equal(t, data.NewVector([]float64{11, 22, 33}), v.Add(w))
	assert.Equal(t, data.NewVector([]float64{9, 18, 27}), w.Sub(v))
}

func TestVectorDot(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3})
	w := data.NewVector([]float64{4, 5, 6})

	prod, err := v.Dot(w)
	require.NoError(t, err)
	assert.Equal(t, 32.0, prod)

	_, err = v.Dot(data.NewVector([]float64{1, 2}))
	assert.Error(t, err)
}
