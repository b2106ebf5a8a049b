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

	"gonum.org/v1/gonum/mathext"

	"github.com/dcatteeu/cl-random/internal/cache"
	"github.com/dcatteeu/cl-random/stream"
)

// Beta is the beta distribution with shapes alpha and beta.
type Beta struct {
	alpha float64
	beta  float64
	// Unit-rate gamma generators combined into a beta draw
	gammaA *Gamma
	gammaB *Gamma
	cache  cache.Cache
}

// NewBeta returns an instance of the Beta distribution. It returns an
// error unless both shapes are positive.
func NewBeta(alpha, beta float64) (*Beta, error) {
	gammaA, err := NewGamma(alpha, 1)
	if err != nil {
		return nil, err
	}
	gammaB, err := NewGamma(beta, 1)
	if err != nil {
		return nil, err
	}

	return &Beta{
		alpha:  alpha,
		beta:   beta,
		gammaA: gammaA,
		gammaB: gammaB,
	}, nil
}

// Mean returns the analytic mean.
func (b *Beta) Mean() (float64, error) {
	return b.alpha / (b.alpha + b.beta), nil
}

// Variance returns the analytic variance.
func (b *Beta) Variance() (float64, error) {
	sum := b.alpha + b.beta
	return b.alpha * b.beta / (sum * sum * (sum + 1)), nil
}

// LogPDF evaluates the log density at x.
func (b *Beta) LogPDF(x float64) float64 {
	c, _ := cache.Get(&b.cache, "logPDFConst", func() (float64, error) {
		lgA, _ := math.Lgamma(b.alpha)
		lgB, _ := math.Lgamma(b.beta)
		lgSum, _ := math.Lgamma(b.alpha + b.beta)
		return lgSum - lgA - lgB, nil
	})
	return b.UnnormalizedLogPDF(x) + c
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant.
func (b *Beta) UnnormalizedLogPDF(x float64) float64 {
	if x < 0 || x > 1 {
		return math.Inf(-1)
	}
	return (b.alpha-1)*math.Log(x) + (b.beta-1)*math.Log(1-x)
}

// CDF evaluates the distribution function at x via the regularized
// incomplete beta function.
func (b *Beta) CDF(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	default:
		return mathext.RegIncBeta(b.alpha, b.beta, x)
	}
}

// Quantile evaluates the quantile function at p in (0, 1).
func (b *Beta) Quantile(p float64) float64 {
	return mathext.InvRegIncBeta(b.alpha, b.beta, p)
}

// Draw returns one sample as g1/(g1+g2) from two independent unit-rate
// gamma draws with shapes alpha and beta.
func (b *Beta) Draw(s *stream.Stream) float64 {
	g1 := b.gammaA.drawStandard(s)
	g2 := b.gammaB.drawStandard(s)
	return g1 / (g1 + g2)
}
