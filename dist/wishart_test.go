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

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dcatteeu/cl-random/dist"
	"github.com/dcatteeu/cl-random/stream"
)

func eye(n int) *mat.SymDense {
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		m.SetSym(i, i, 1)
	}
	return m
}

func TestNewWishart(t *testing.T) {
	_, err := dist.NewWishart(5, nil)
	assert.Error(t, err)

	// Degrees of freedom below the dimension are rejected.
	_, err = dist.NewWishart(2, eye(3))
	assert.Error(t, err)

	_, err = dist.NewWishart(3, eye(3))
	assert.NoError(t, err)
}

func TestWishartMean(t *testing.T) {
	w, err := dist.NewWishart(5, eye(3))
	require.NoError(t, err)

	mean, err := w.Mean()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 5
			}
			assert.Equal(t, want, mean.At(i, j))
		}
	}
}

func TestWishartDraw(t *testing.T) {
	w, err := dist.NewWishart(5, eye(3))
	require.NoError(t, err)

	s := stream.NewMT19937(100)
	const draws = 20000
	sum := mat.NewSymDense(3, nil)
	var chol mat.Cholesky
	for i := 0; i < draws; i++ {
		x, err := w.Draw(s)
		require.NoError(t, err)
		require.Equal(t, 3, x.SymmetricDim())

		// Every draw is symmetric positive definite.
		if i < 1000 {
			require.True(t, chol.Factorize(x), "draw %d is not positive definite", i)
		}

		for r := 0; r < 3; r++ {
			for c := r; c < 3; c++ {
				sum.SetSym(r, c, sum.At(r, c)+x.At(r, c))
			}
		}
	}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := 0.0
			if r == c {
				want = 5
			}
			assert.InDelta(t, want, sum.At(r, c)/draws, 0.1,
				"empirical mean entry (%d, %d)", r, c)
		}
	}
}

func TestWishartScaled(t *testing.T) {
	scale := mat.NewSymDense(2, []float64{2, 0.5, 0.5, 1})
	w, err := dist.NewWishart(4, scale)
	require.NoError(t, err)

	s := stream.NewMT19937(101)
	const draws = 20000
	var m00, m01 float64
	for i := 0; i < draws; i++ {
		x, err := w.Draw(s)
		require.NoError(t, err)
		m00 += x.At(0, 0)
		m01 += x.At(0, 1)
	}
	assert.InDelta(t, 8, m00/draws, 0.2)
	assert.InDelta(t, 2, m01/draws, 0.15)
}

func TestWishartLogPDF(t *testing.T) {
	w, err := dist.NewWishart(5, eye(2))
	require.NoError(t, err)

	lp, err := w.LogPDF(eye(2))
	require.NoError(t, err)
	assert.True(t, lp < 0)

	// Log density is maximal at the mode (nu-dim-1)*scale = 2*I.
	mode := mat.NewSymDense(2, []float64{2, 0, 0, 2})
	atMode, err := w.LogPDF(mode)
	require.NoError(t, err)
	bigger := mat.NewSymDense(2, []float64{3, 0, 0, 3})
	offMode, err := w.LogPDF(bigger)
	require.NoError(t, err)
	assert.Greater(t, atMode, lp)
	assert.Greater(t, atMode, offMode)

	// A non positive definite point has zero density.
	singular := mat.NewSymDense(2, []float64{1, 1, 1, 1})
	lp, err = w.LogPDF(singular)
	require.NoError(t, err)
	assert.True(t, math.IsInf(lp, -1), "expected minus infinity, got %v", lp)

	_, err = w.LogPDF(nil)
	assert.Error(t, err)
}

func TestNewInverseWishart(t *testing.T) {
	_, err := dist.NewInverseWishart(5, nil)
	assert.Error(t, err)
	_, err = dist.NewInverseWishart(2, eye(3))
	assert.Error(t, err)
}

func TestInverseWishartMean(t *testing.T) {
	iw, err := dist.NewInverseWishart(7, eye(3))
	require.NoError(t, err)

	mean, err := iw.Mean()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0/3, mean.At(i, i), 1e-12)
	}

	// The mean requires nu > dim + 1.
	tight, err := dist.NewInverseWishart(4, eye(3))
	require.NoError(t, err)
	_, err = tight.Mean()
	assert.ErrorIs(t, err, dist.ErrUndefined)
}

func TestInverseWishartDraw(t *testing.T) {
	iw, err := dist.NewInverseWishart(8, eye(3))
	require.NoError(t, err)

	s := stream.NewMT19937(102)
	const draws = 20000
	sum := mat.NewSymDense(3, nil)
	var chol mat.Cholesky
	for i := 0; i < draws; i++ {
		x, err := iw.Draw(s)
		require.NoError(t, err)

		if i < 1000 {
			require.True(t, chol.Factorize(x), "draw %d is not positive definite", i)
		}
		for r := 0; r < 3; r++ {
			for c := r; c < 3; c++ {
				sum.SetSym(r, c, sum.At(r, c)+x.At(r, c))
			}
		}
	}

	// Empirical mean converges to inverseScale/(nu-dim-1) = I/4.
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := 0.0
			if r == c {
				want = 0.25
			}
			assert.InDelta(t, want, sum.At(r, c)/draws, 0.02,
				"empirical mean entry (%d, %d)", r, c)
		}
	}
}

func TestInverseWishartLogPDF(t *testing.T) {
	iw, err := dist.NewInverseWishart(5, eye(2))
	require.NoError(t, err)
	_, err = iw.LogPDF(eye(2))
	assert.ErrorIs(t, err, dist.ErrNotImplemented)
}
