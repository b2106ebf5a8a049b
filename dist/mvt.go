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

// MultivariateT is the multivariate Student's t distribution with a
// mean vector, a scale matrix and nu degrees of freedom. It composes
// an internal multivariate normal generator with an independent
// inverse-chi-square scaling-factor generator.
type MultivariateT struct {
	normal  *MultivariateNormal
	scaling *InverseChiSquare
	nu      float64
	cache   cache.Cache
}

// NewMultivariateT returns an instance of the MultivariateT
// distribution. The mean length must equal the scale matrix dimension
// and nu must be positive.
func NewMultivariateT(mean []float64, scale *mat.SymDense, nu float64) (*MultivariateT, error) {
	normal, err := NewMultivariateNormal(mean, scale)
	if err != nil {
		return nil, err
	}
	if !(nu > 0) {
		return nil, errors.Errorf("degrees of freedom should be positive, got %v", nu)
	}
	scaling, err := NewInverseChiSquare(nu, 1)
	if err != nil {
		return nil, err
	}

	return &MultivariateT{
		normal:  normal,
		scaling: scaling,
		nu:      nu,
	}, nil
}

// Dim returns the dimension.
func (t *MultivariateT) Dim() int {
	return t.normal.dim
}

// Mean returns a copy of the mean vector. It returns ErrUndefined
// unless nu > 1.
func (t *MultivariateT) Mean() (data.Vector, error) {
	if t.nu <= 1 {
		return nil, errors.Wrapf(ErrUndefined, "mean of a multivariate t distribution with nu = %v", t.nu)
	}
	return t.normal.Mean()
}

// Covariance returns the covariance matrix, the scale matrix inflated
// by nu/(nu-2). It returns ErrUndefined unless nu > 2.
func (t *MultivariateT) Covariance() (*mat.SymDense, error) {
	if t.nu <= 2 {
		return nil, errors.Wrapf(ErrUndefined, "covariance of a multivariate t distribution with nu = %v", t.nu)
	}
	scale, err := t.normal.Covariance()
	if err != nil {
		return nil, err
	}

	factor := t.nu / (t.nu - 2)
	dim := t.normal.dim
	out := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			out.SetSym(i, j, factor*scale.At(i, j))
		}
	}
	return out, nil
}

// logPDFConst returns the cached normalizing constant of the log
// density.
func (t *MultivariateT) logPDFConst() (float64, error) {
	ld, err := t.normal.logDetCov()
	if err != nil {
		return 0, err
	}
	return cache.Get(&t.cache, "logPDFConst", func() (float64, error) {
		k := float64(t.normal.dim)
		lgNuK, _ := math.Lgamma((t.nu + k) / 2)
		lgNu, _ := math.Lgamma(t.nu / 2)
		return lgNuK - lgNu - k/2*math.Log(t.nu*math.Pi) - ld/2, nil
	})
}

// LogPDF evaluates the log density at x.
func (t *MultivariateT) LogPDF(x []float64) (float64, error) {
	u, err := t.UnnormalizedLogPDF(x)
	if err != nil {
		return 0, err
	}
	c, err := t.logPDFConst()
	if err != nil {
		return 0, err
	}
	return u + c, nil
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant.
func (t *MultivariateT) UnnormalizedLogPDF(x []float64) (float64, error) {
	if len(x) != t.normal.dim {
		return 0, errors.Errorf("point length %d should equal dimension %d", len(x), t.normal.dim)
	}
	q, err := t.normal.quadraticForm(data.NewVector(x))
	if err != nil {
		return 0, err
	}
	k := float64(t.normal.dim)
	return -(t.nu + k) / 2 * math.Log1p(q/t.nu), nil
}

// Draw returns one sample vector together with the scaling factor it
// was generated with. Callers conditioning on the draw, Gibbs style,
// need the factor as well.
func (t *MultivariateT) Draw(s *stream.Stream) (data.Vector, float64, error) {
	scaling := t.scaling.Draw(s)
	vec, err := t.normal.drawScaled(s, math.Sqrt(scaling))
	if err != nil {
		return nil, 0, err
	}
	return vec, scaling, nil
}

// Marginal is recognized for the multivariate t but not implemented;
// unlike the normal, conditioning and marginalizing do not reduce to
// sub-matrix extraction of the scale.
func (t *MultivariateT) Marginal(indices []int) (*MultivariateT, error) {
	return nil, errors.Wrap(ErrNotImplemented, "marginal of a multivariate t distribution")
}
