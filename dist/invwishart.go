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
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/dcatteeu/cl-random/internal/cache"
	"github.com/dcatteeu/cl-random/stream"
)

// InverseWishart is the inverse-Wishart distribution, the dual of the
// Wishart through the identity that the inverse of an
// InverseWishart(nu, inverseScale) draw is Wishart(nu, inverseScale)
// distributed.
type InverseWishart struct {
	nu       float64
	dim      int
	invScale *mat.SymDense
	bart     *bartlett
	cache    cache.Cache
}

// NewInverseWishart returns an instance of the InverseWishart
// distribution. The degrees of freedom must be at least the dimension
// of the inverse scale matrix; positive definiteness of the inverse
// scale is established by the first draw.
func NewInverseWishart(nu float64, inverseScale *mat.SymDense) (*InverseWishart, error) {
	if inverseScale == nil {
		return nil, errors.New("inverse scale should not be nil")
	}
	dim := inverseScale.SymmetricDim()
	bart, err := newBartlett(nu, dim)
	if err != nil {
		return nil, err
	}

	sc := mat.NewSymDense(dim, nil)
	sc.CopySym(inverseScale)

	return &InverseWishart{
		nu:       nu,
		dim:      dim,
		invScale: sc,
		bart:     bart,
	}, nil
}

// Dim returns the dimension of a drawn matrix.
func (iw *InverseWishart) Dim() int {
	return iw.dim
}

// Mean returns the analytic mean, the inverse scale divided by
// nu-dim-1. It returns ErrUndefined unless nu > dim+1.
func (iw *InverseWishart) Mean() (*mat.SymDense, error) {
	denom := iw.nu - float64(iw.dim) - 1
	if denom <= 0 {
		return nil, errors.Wrapf(ErrUndefined, "mean of an inverse Wishart distribution with nu = %v and dimension %d", iw.nu, iw.dim)
	}

	out := mat.NewSymDense(iw.dim, nil)
	for i := 0; i < iw.dim; i++ {
		for j := i; j < iw.dim; j++ {
			out.SetSym(i, j, iw.invScale.At(i, j)/denom)
		}
	}
	return out, nil
}

// inverseScaleRightRoot returns the cached upper Cholesky factor of the
// inverse scale matrix.
func (iw *InverseWishart) inverseScaleRightRoot() (*mat.TriDense, error) {
	return cache.Get(&iw.cache, "inverseScaleRightRoot", func() (*mat.TriDense, error) {
		var chol mat.Cholesky
		if ok := chol.Factorize(iw.invScale); !ok {
			return nil, errors.New("inverse scale matrix is not positive definite")
		}
		u := mat.NewTriDense(iw.dim, mat.Upper, nil)
		chol.UTo(u)
		return u, nil
	})
}

// Draw returns one symmetric positive-definite matrix. With L the
// standard Wishart root and U the right root of the inverse scale, the
// draw is the Gram product W^T W of W = solve(L, U); the triangular
// solve stands in for the matrix inversion of the Wishart dual.
func (iw *InverseWishart) Draw(s *stream.Stream) (*mat.SymDense, error) {
	u, err := iw.inverseScaleRightRoot()
	if err != nil {
		return nil, err
	}

	l := iw.bart.draw(s)
	var w mat.Dense
	if err := w.Solve(l, u); err != nil {
		return nil, errors.Wrap(err, "triangular solve failed")
	}

	var out mat.SymDense
	out.SymOuterK(1, w.T())
	return &out, nil
}

// LogPDF is recognized for the inverse Wishart but not implemented.
func (iw *InverseWishart) LogPDF(x *mat.SymDense) (float64, error) {
	return 0, errors.Wrap(ErrNotImplemented, "log density of an inverse Wishart distribution")
}
