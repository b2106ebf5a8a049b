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

// Gamma is the gamma distribution with shape alpha and rate beta.
type Gamma struct {
	alpha float64
	rate  float64
	// Constants of the Marsaglia-Tsang squeeze method. They are derived
	// from the boosted shape alpha+1 when alpha < 1, not from alpha.
	d, c  float64
	boost bool
	cache cache.Cache
}

// NewGamma returns an instance of the Gamma distribution with shape
// alpha and rate beta. It returns an error unless both are positive.
func NewGamma(alpha, beta float64) (*Gamma, error) {
	if !(alpha > 0) {
		return nil, errors.Errorf("shape should be positive, got %v", alpha)
	}
	if !(beta > 0) {
		return nil, errors.Errorf("rate should be positive, got %v", beta)
	}

	shape := alpha
	boost := alpha < 1
	if boost {
		shape = alpha + 1
	}
	d := shape - 1.0/3

	return &Gamma{
		alpha: alpha,
		rate:  beta,
		d:     d,
		c:     1 / math.Sqrt(9*d),
		boost: boost,
	}, nil
}

// Mean returns the analytic mean.
func (g *Gamma) Mean() (float64, error) {
	return g.alpha / g.rate, nil
}

// Variance returns the analytic variance.
func (g *Gamma) Variance() (float64, error) {
	return g.alpha / (g.rate * g.rate), nil
}

// logPDFConst returns the cached normalizing constant of the log
// density.
func (g *Gamma) logPDFConst() float64 {
	c, _ := cache.Get(&g.cache, "logPDFConst", func() (float64, error) {
		lg, _ := math.Lgamma(g.alpha)
		return g.alpha*math.Log(g.rate) - lg, nil
	})
	return c
}

// LogPDF evaluates the log density at x.
func (g *Gamma) LogPDF(x float64) float64 {
	return g.UnnormalizedLogPDF(x) + g.logPDFConst()
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant.
func (g *Gamma) UnnormalizedLogPDF(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return (g.alpha-1)*math.Log(x) - g.rate*x
}

// CDF evaluates the distribution function at x via the regularized
// incomplete gamma function.
func (g *Gamma) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncReg(g.alpha, g.rate*x)
}

// Quantile evaluates the quantile function at p in (0, 1).
func (g *Gamma) Quantile(p float64) float64 {
	return mathext.GammaIncRegInv(g.alpha, p) / g.rate
}

// Draw returns one sample.
func (g *Gamma) Draw(s *stream.Stream) float64 {
	return g.drawStandard(s) / g.rate
}

// drawStandard returns one sample from the gamma distribution with
// shape alpha and unit rate using the Marsaglia-Tsang squeeze method.
// For alpha < 1 the draw is made at the boosted shape alpha+1 and
// scaled down by U^(1/alpha).
func (g *Gamma) drawStandard(s *stream.Stream) float64 {
	var v float64
	for {
		x := drawStandardNormal(s)
		t := 1 + g.c*x
		if t <= 0 {
			continue
		}
		v = t * t * t

		u := 1 - s.Float(1)
		x2 := x * x
		// Cheap squeeze test that accepts the bulk of the candidates
		// without a logarithm.
		if u < 1-0.0331*x2*x2 {
			break
		}
		if math.Log(u) < x2/2+g.d*(1-v+math.Log(v)) {
			break
		}
	}

	r := g.d * v
	if g.boost {
		r *= math.Pow(1-s.Float(1), 1/g.alpha)
	}
	return r
}
