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
	"gonum.org/v1/gonum/mathext"

	"github.com/dcatteeu/cl-random/internal/cache"
	"github.com/dcatteeu/cl-random/stream"
)

// bartlett generates the standard Wishart left root of the Bartlett
// decomposition: a lower triangular matrix whose i-th diagonal entry is
// the square root of a chi-square draw with nu-i degrees of freedom and
// whose entries below the diagonal are standard normal. The chi-square
// generators are built once, at construction.
type bartlett struct {
	dim  int
	chis []*ChiSquare
}

func newBartlett(nu float64, dim int) (*bartlett, error) {
	if dim < 1 {
		return nil, errors.Errorf("dimension should be positive, got %v", dim)
	}
	if nu < float64(dim) {
		return nil, errors.Errorf("degrees of freedom %v should be at least the dimension %d", nu, dim)
	}

	chis := make([]*ChiSquare, dim)
	for i := range chis {
		chi, err := NewChiSquare(nu - float64(i))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		chis[i] = chi
	}

	return &bartlett{dim: dim, chis: chis}, nil
}

func (b *bartlett) draw(s *stream.Stream) *mat.TriDense {
	l := mat.NewTriDense(b.dim, mat.Lower, nil)
	for i := 0; i < b.dim; i++ {
		l.SetTri(i, i, math.Sqrt(b.chis[i].Draw(s)))
		for j := 0; j < i; j++ {
			l.SetTri(i, j, drawStandardNormal(s))
		}
	}
	return l
}

// Wishart is the Wishart distribution over symmetric positive-definite
// matrices, with nu degrees of freedom and the given scale matrix.
type Wishart struct {
	nu    float64
	dim   int
	scale *mat.SymDense
	bart  *bartlett
	cache cache.Cache
}

// NewWishart returns an instance of the Wishart distribution. The
// degrees of freedom must be at least the dimension of the scale
// matrix; positive definiteness of the scale is established by the
// first draw.
func NewWishart(nu float64, scale *mat.SymDense) (*Wishart, error) {
	if scale == nil {
		return nil, errors.New("scale should not be nil")
	}
	dim := scale.SymmetricDim()
	bart, err := newBartlett(nu, dim)
	if err != nil {
		return nil, err
	}

	sc := mat.NewSymDense(dim, nil)
	sc.CopySym(scale)

	return &Wishart{
		nu:    nu,
		dim:   dim,
		scale: sc,
		bart:  bart,
	}, nil
}

// Dim returns the dimension of a drawn matrix.
func (w *Wishart) Dim() int {
	return w.dim
}

// Mean returns the analytic mean nu times the scale matrix.
func (w *Wishart) Mean() (*mat.SymDense, error) {
	out := mat.NewSymDense(w.dim, nil)
	for i := 0; i < w.dim; i++ {
		for j := i; j < w.dim; j++ {
			out.SetSym(i, j, w.nu*w.scale.At(i, j))
		}
	}
	return out, nil
}

// scaleChol returns the cached Cholesky factorization of the scale
// matrix.
func (w *Wishart) scaleChol() (*mat.Cholesky, error) {
	return cache.Get(&w.cache, "scaleChol", func() (*mat.Cholesky, error) {
		var chol mat.Cholesky
		if ok := chol.Factorize(w.scale); !ok {
			return nil, errors.New("scale matrix is not positive definite")
		}
		return &chol, nil
	})
}

// scaleLeftRoot returns the cached lower Cholesky factor of the scale
// matrix.
func (w *Wishart) scaleLeftRoot() (*mat.TriDense, error) {
	chol, err := w.scaleChol()
	if err != nil {
		return nil, err
	}
	return cache.Get(&w.cache, "scaleLeftRoot", func() (*mat.TriDense, error) {
		l := mat.NewTriDense(w.dim, mat.Lower, nil)
		chol.LTo(l)
		return l, nil
	})
}

// Draw returns one symmetric positive-definite matrix as the Gram
// product (A)(A)^T of A = scaleLeftRoot * standardWishartRoot.
func (w *Wishart) Draw(s *stream.Stream) (*mat.SymDense, error) {
	root, err := w.scaleLeftRoot()
	if err != nil {
		return nil, err
	}

	l := w.bart.draw(s)
	var a mat.Dense
	a.Mul(root, l)

	var out mat.SymDense
	out.SymOuterK(1, &a)
	return &out, nil
}

// LogPDF evaluates the log density at the symmetric positive-definite
// matrix x; minus infinity when x is not positive definite.
func (w *Wishart) LogPDF(x *mat.SymDense) (float64, error) {
	if x == nil || x.SymmetricDim() != w.dim {
		return 0, errors.Errorf("point should be a symmetric matrix of dimension %d", w.dim)
	}

	chol, err := w.scaleChol()
	if err != nil {
		return 0, err
	}
	c, err := cache.Get(&w.cache, "logPDFConst", func() (float64, error) {
		k := float64(w.dim)
		return -w.nu*k/2*math.Ln2 - w.nu/2*chol.LogDet() - mathext.MvLgamma(w.nu/2, w.dim), nil
	})
	if err != nil {
		return 0, err
	}

	var xChol mat.Cholesky
	if ok := xChol.Factorize(x); !ok {
		return math.Inf(-1), nil
	}

	// trace(scale^-1 x) through a Cholesky solve, never an inverse.
	var y mat.Dense
	if err := chol.SolveTo(&y, x); err != nil {
		return 0, errors.Wrap(err, "solve failed")
	}
	trace := 0.0
	for i := 0; i < w.dim; i++ {
		trace += y.At(i, i)
	}

	k := float64(w.dim)
	return (w.nu-k-1)/2*xChol.LogDet() - trace/2 + c, nil
}
