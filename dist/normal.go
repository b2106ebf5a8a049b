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

	"github.com/dcatteeu/cl-random/internal/cache"
	"github.com/dcatteeu/cl-random/stream"
)

const logSqrt2Pi = 0.91893853320467274178032973640562

// drawStandardNormal returns one sample from the standard normal
// distribution using Leva's ratio-of-uniforms method. The quadratic
// bounding curves decide most candidates without evaluating the
// logarithm; the expected number of iterations is about 1.37.
func drawStandardNormal(s *stream.Stream) float64 {
	for {
		u := 1 - s.Float(1)
		v := 1.7156 * (s.Float(1) - 0.5)
		x := u - 0.449871
		y := math.Abs(v) + 0.386595
		q := x*x + y*(0.19600*y-0.25472*x)

		if q < 0.27597 {
			return v / u
		}
		if q > 0.27846 {
			continue
		}
		if v*v <= -4*u*u*math.Log(u) {
			return v / u
		}
	}
}

// standardNormalCDF evaluates the standard normal distribution function.
func standardNormalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// standardNormalQuantile evaluates the standard normal quantile
// function at p in (0, 1).
func standardNormalQuantile(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// standardNormalLogPDF evaluates the standard normal log density.
func standardNormalLogPDF(z float64) float64 {
	return -z*z/2 - logSqrt2Pi
}

// Normal is the normal (Gaussian) distribution parameterized by mean
// and variance.
type Normal struct {
	mean  float64
	sigma float64
	cache cache.Cache
}

// NewNormal returns an instance of the Normal distribution. It returns
// an error unless variance > 0.
func NewNormal(mean, variance float64) (*Normal, error) {
	if !(variance > 0) {
		return nil, errors.Errorf("variance should be positive, got %v", variance)
	}

	return &Normal{
		mean:  mean,
		sigma: math.Sqrt(variance),
	}, nil
}

// Mean returns the analytic mean.
func (n *Normal) Mean() (float64, error) {
	return n.mean, nil
}

// Variance returns the analytic variance.
func (n *Normal) Variance() (float64, error) {
	return n.sigma * n.sigma, nil
}

// logPDFConst returns the cached normalizing constant of the log
// density.
func (n *Normal) logPDFConst() float64 {
	c, _ := cache.Get(&n.cache, "logPDFConst", func() (float64, error) {
		return -logSqrt2Pi - math.Log(n.sigma), nil
	})
	return c
}

// LogPDF evaluates the log density at x.
func (n *Normal) LogPDF(x float64) float64 {
	return n.UnnormalizedLogPDF(x) + n.logPDFConst()
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant.
func (n *Normal) UnnormalizedLogPDF(x float64) float64 {
	z := (x - n.mean) / n.sigma
	return -z * z / 2
}

// CDF evaluates the distribution function at x.
func (n *Normal) CDF(x float64) float64 {
	return standardNormalCDF((x - n.mean) / n.sigma)
}

// Quantile evaluates the quantile function at p in (0, 1).
func (n *Normal) Quantile(p float64) float64 {
	return n.mean + n.sigma*standardNormalQuantile(p)
}

// Draw returns one sample.
func (n *Normal) Draw(s *stream.Stream) float64 {
	return n.mean + n.sigma*drawStandardNormal(s)
}
