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
	"gonum.org/v1/gonum/mathext"

	"github.com/dcatteeu/cl-random/internal/cache"
	"github.com/dcatteeu/cl-random/stream"
)

// StudentT is Student's t distribution with a location, a scale and nu
// degrees of freedom.
type StudentT struct {
	mean  float64
	scale float64
	nu    float64
	cache cache.Cache
}

// NewStudentT returns an instance of the StudentT distribution. It
// returns an error unless scale > 0 and nu > 0.
func NewStudentT(mean, scale, nu float64) (*StudentT, error) {
	if !(scale > 0) {
		return nil, errors.Errorf("scale should be positive, got %v", scale)
	}
	if !(nu > 0) {
		return nil, errors.Errorf("degrees of freedom should be positive, got %v", nu)
	}

	return &StudentT{
		mean:  mean,
		scale: scale,
		nu:    nu,
	}, nil
}

// drawStandardT returns one sample from the standard t distribution
// with nu degrees of freedom using Bailey's polar method: a point is
// drawn uniformly from the square (-1,1)^2 and accepted when it falls
// inside the unit disc, then transformed without further rejection.
func drawStandardT(s *stream.Stream, nu float64) float64 {
	for {
		u := s.Float(2) - 1
		v := s.Float(2) - 1
		w := u*u + v*v
		if w > 1 || w == 0 {
			continue
		}
		return u * math.Sqrt(nu*(math.Pow(w, -2/nu)-1)/w)
	}
}

// Mean returns the location parameter; as a location it is defined for
// every nu.
func (t *StudentT) Mean() (float64, error) {
	return t.mean, nil
}

// Variance returns the analytic variance. It returns ErrUndefined
// unless nu > 2.
func (t *StudentT) Variance() (float64, error) {
	if t.nu <= 2 {
		return 0, errors.Wrapf(ErrUndefined, "variance of a t distribution with nu = %v", t.nu)
	}
	return t.scale * t.scale * t.nu / (t.nu - 2), nil
}

// logPDFConst returns the cached normalizing constant of the log
// density.
func (t *StudentT) logPDFConst() float64 {
	c, _ := cache.Get(&t.cache, "logPDFConst", func() (float64, error) {
		lgNu1, _ := math.Lgamma((t.nu + 1) / 2)
		lgNu, _ := math.Lgamma(t.nu / 2)
		return lgNu1 - lgNu - math.Log(t.nu*math.Pi)/2 - math.Log(t.scale), nil
	})
	return c
}

// LogPDF evaluates the log density at x.
func (t *StudentT) LogPDF(x float64) float64 {
	return t.UnnormalizedLogPDF(x) + t.logPDFConst()
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant.
func (t *StudentT) UnnormalizedLogPDF(x float64) float64 {
	z := (x - t.mean) / t.scale
	return -(t.nu + 1) / 2 * math.Log1p(z*z/t.nu)
}

// CDF evaluates the distribution function at x via the regularized
// incomplete beta function.
func (t *StudentT) CDF(x float64) float64 {
	z := (x - t.mean) / t.scale
	if z == 0 {
		return 0.5
	}
	tail := 0.5 * mathext.RegIncBeta(t.nu/2, 0.5, t.nu/(t.nu+z*z))
	if z > 0 {
		return 1 - tail
	}
	return tail
}

// Quantile evaluates the quantile function at p in (0, 1).
func (t *StudentT) Quantile(p float64) float64 {
	if p == 0.5 {
		return t.mean
	}
	tail := 2 * p
	if p > 0.5 {
		tail = 2 * (1 - p)
	}
	b := mathext.InvRegIncBeta(t.nu/2, 0.5, tail)
	z := math.Sqrt(t.nu * (1 - b) / b)
	if p < 0.5 {
		z = -z
	}
	return t.mean + t.scale*z
}

// Draw returns one sample.
func (t *StudentT) Draw(s *stream.Stream) float64 {
	return t.mean + t.scale*drawStandardT(s, t.nu)
}
