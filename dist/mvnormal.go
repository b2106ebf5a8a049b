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

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/dcatteeu/cl-random/data"
	"github.com/dcatteeu/cl-random/internal/cache"
	"github.com/dcatteeu/cl-random/stream"
)

// MultivariateNormal is the multivariate normal distribution,
// parameterized by a mean vector and either the covariance matrix or
// its right square root, the upper triangular U with U^T U equal to the
// covariance. Whichever parameterization was not supplied is derived
// once, on first use, and cached: the root by Cholesky factorization,
// the covariance by the Gram product of the root.
type MultivariateNormal struct {
	mean data.Vector
	dim  int
	// Exactly one of cov and root is set at construction.
	cov   *mat.SymDense
	root  *mat.TriDense
	cache cache.Cache
}

// NewMultivariateNormal returns an instance of the MultivariateNormal
// distribution with the given mean and covariance. The mean length
// must equal the matrix dimension. Positive definiteness is established
// by the first operation that needs the Cholesky factor.
func NewMultivariateNormal(mean []float64, covariance *mat.SymDense) (*MultivariateNormal, error) {
	if covariance == nil {
		return nil, errors.New("covariance should not be nil")
	}
	dim := covariance.SymmetricDim()
	if len(mean) != dim {
		return nil, errors.Errorf("mean length %d should equal matrix dimension %d", len(mean), dim)
	}

	cov := mat.NewSymDense(dim, nil)
	cov.CopySym(covariance)

	return &MultivariateNormal{
		mean: data.NewVector(mean).Copy(),
		dim:  dim,
		cov:  cov,
	}, nil
}

// NewMultivariateNormalFromRoot returns an instance of the
// MultivariateNormal distribution with the given mean and right square
// root of the covariance.
func NewMultivariateNormalFromRoot(mean []float64, root *mat.TriDense) (*MultivariateNormal, error) {
	if root == nil {
		return nil, errors.New("root should not be nil")
	}
	dim, kind := root.Triangle()
	if kind != mat.Upper {
		return nil, errors.New("root should be upper triangular")
	}
	if len(mean) != dim {
		return nil, errors.Errorf("mean length %d should equal matrix dimension %d", len(mean), dim)
	}

	r := mat.NewTriDense(dim, mat.Upper, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			r.SetTri(i, j, root.At(i, j))
		}
	}

	return &MultivariateNormal{
		mean: data.NewVector(mean).Copy(),
		dim:  dim,
		root: r,
	}, nil
}

// Dim returns the dimension.
func (m *MultivariateNormal) Dim() int {
	return m.dim
}

// Mean returns a copy of the mean vector.
func (m *MultivariateNormal) Mean() (data.Vector, error) {
	return m.mean.Copy(), nil
}

// Covariance returns a copy of the covariance matrix, deriving it from
// the root when the distribution was constructed from one.
func (m *MultivariateNormal) Covariance() (*mat.SymDense, error) {
	cov, err := cache.Get(&m.cache, "covariance", func() (*mat.SymDense, error) {
		if m.cov != nil {
			return m.cov, nil
		}
		var sym mat.SymDense
		sym.SymOuterK(1, m.root.T())
		return &sym, nil
	})
	if err != nil {
		return nil, err
	}

	out := mat.NewSymDense(m.dim, nil)
	out.CopySym(cov)
	return out, nil
}

// rightRoot returns the cached upper factor U with U^T U equal to the
// covariance.
func (m *MultivariateNormal) rightRoot() (*mat.TriDense, error) {
	return cache.Get(&m.cache, "rightRoot", func() (*mat.TriDense, error) {
		if m.root != nil {
			return m.root, nil
		}
		var chol mat.Cholesky
		if ok := chol.Factorize(m.cov); !ok {
			return nil, errors.New("covariance is not positive definite")
		}
		root := mat.NewTriDense(m.dim, mat.Upper, nil)
		chol.UTo(root)
		return root, nil
	})
}

// logDetCov returns the cached log determinant of the covariance,
// twice the log determinant of the triangular root.
func (m *MultivariateNormal) logDetCov() (float64, error) {
	u, err := m.rightRoot()
	if err != nil {
		return 0, err
	}
	return cache.Get(&m.cache, "logDetCov", func() (float64, error) {
		sum := 0.0
		for i := 0; i < m.dim; i++ {
			sum += math.Log(u.At(i, i))
		}
		return 2 * sum, nil
	})
}

// quadraticForm evaluates (x-mean)^T covariance^-1 (x-mean) through a
// triangular solve against U^T; the covariance is never inverted.
func (m *MultivariateNormal) quadraticForm(x data.Vector) (float64, error) {
	u, err := m.rightRoot()
	if err != nil {
		return 0, err
	}

	delta := x.Sub(m.mean)
	var w mat.VecDense
	if err := w.SolveVec(u.T(), mat.NewVecDense(m.dim, delta)); err != nil {
		return 0, errors.Wrap(err, "triangular solve failed")
	}

	return mat.Dot(&w, &w), nil
}

// LogPDF evaluates the log density at x.
func (m *MultivariateNormal) LogPDF(x []float64) (float64, error) {
	if len(x) != m.dim {
		return 0, errors.Errorf("point length %d should equal dimension %d", len(x), m.dim)
	}
	q, err := m.quadraticForm(data.NewVector(x))
	if err != nil {
		return 0, err
	}
	ld, err := m.logDetCov()
	if err != nil {
		return 0, err
	}

	return -q/2 - ld/2 - float64(m.dim)*logSqrt2Pi, nil
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant.
func (m *MultivariateNormal) UnnormalizedLogPDF(x []float64) (float64, error) {
	if len(x) != m.dim {
		return 0, errors.Errorf("point length %d should equal dimension %d", len(x), m.dim)
	}
	q, err := m.quadraticForm(data.NewVector(x))
	if err != nil {
		return 0, err
	}

	return -q / 2, nil
}

// Draw returns one sample vector.
func (m *MultivariateNormal) Draw(s *stream.Stream) (data.Vector, error) {
	return m.drawScaled(s, 1)
}

// drawScaled returns mean + U^T (scale * z) for a vector z of
// independent standard normal entries.
func (m *MultivariateNormal) drawScaled(s *stream.Stream, scale float64) (data.Vector, error) {
	u, err := m.rightRoot()
	if err != nil {
		return nil, err
	}

	z := make([]float64, m.dim)
	for i := range z {
		z[i] = scale * drawStandardNormal(s)
	}

	var y mat.VecDense
	y.MulVec(u.T(), mat.NewVecDense(m.dim, z))

	out := make(data.Vector, m.dim)
	for i := range out {
		out[i] = m.mean[i] + y.AtVec(i)
	}
	return out, nil
}

// Marginal returns the marginal distribution of the selected
// coordinates, in the given order.
func (m *MultivariateNormal) Marginal(indices []int) (*MultivariateNormal, error) {
	if len(indices) == 0 {
		return nil, errors.New("indices should not be empty")
	}
	for _, idx := range indices {
		if idx < 0 || idx >= m.dim {
			return nil, errors.Errorf("index %d out of range [0, %d)", idx, m.dim)
		}
	}

	cov, err := m.Covariance()
	if err != nil {
		return nil, err
	}

	k := len(indices)
	subMean := make([]float64, k)
	subCov := mat.NewSymDense(k, nil)
	for i, a := range indices {
		subMean[i] = m.mean[a]
		for j := i; j < k; j++ {
			subCov.SetSym(i, j, cov.At(a, indices[j]))
		}
	}

	return NewMultivariateNormal(subMean, subCov)
}
