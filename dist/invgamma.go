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

// InverseGamma is the distribution of beta/X where X is gamma
// distributed with shape alpha and unit rate; beta acts as a scale.
type InverseGamma struct {
	alpha float64
	scale float64
	// Standard gamma generator inverted by Draw
	gamma *Gamma
	cache cache.Cache
}

// NewInverseGamma returns an instance of the InverseGamma distribution
// with shape alpha and scale beta. It returns an error unless both are
// positive.
func NewInverseGamma(alpha, beta float64) (*InverseGamma, error) {
	gamma, err := NewGamma(alpha, 1)
	if err != nil {
		return nil, err
	}
	if !(beta > 0) {
		return nil, errors.Errorf("scale should be positive, got %v", beta)
	}

	return &InverseGamma{
		alpha: alpha,
		scale: beta,
		gamma: gamma,
	}, nil
}

// Mean returns the analytic mean beta/(alpha-1). It returns
// ErrUndefined unless alpha > 1.
func (ig *InverseGamma) Mean() (float64, error) {
	if ig.alpha <= 1 {
		return 0, errors.Wrapf(ErrUndefined, "mean of an inverse gamma distribution with alpha = %v", ig.alpha)
	}
	return ig.scale / (ig.alpha - 1), nil
}

// Variance returns the analytic variance. It returns ErrUndefined
// unless alpha > 2.
func (ig *InverseGamma) Variance() (float64, error) {
	if ig.alpha <= 2 {
		return 0, errors.Wrapf(ErrUndefined, "variance of an inverse gamma distribution with alpha = %v", ig.alpha)
	}
	a1 := ig.alpha - 1
	return ig.scale * ig.scale / (a1 * a1 * (ig.alpha - 2)), nil
}

// LogPDF evaluates the log density at x.
func (ig *InverseGamma) LogPDF(x float64) float64 {
	c, _ := cache.Get(&ig.cache, "logPDFConst", func() (float64, error) {
		lg, _ := math.Lgamma(ig.alpha)
		return ig.alpha*math.Log(ig.scale) - lg, nil
	})
	return ig.UnnormalizedLogPDF(x) + c
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant.
func (ig *InverseGamma) UnnormalizedLogPDF(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return -(ig.alpha+1)*math.Log(x) - ig.scale/x
}

// CDF evaluates the distribution function at x via the complementary
// regularized incomplete gamma function.
func (ig *InverseGamma) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncRegComp(ig.alpha, ig.scale/x)
}

// Quantile evaluates the quantile function at p in (0, 1).
func (ig *InverseGamma) Quantile(p float64) float64 {
	return ig.scale / mathext.GammaIncRegCompInv(ig.alpha, p)
}

// Draw returns one sample by inverting a standard gamma draw.
func (ig *InverseGamma) Draw(s *stream.Stream) float64 {
	return ig.scale / ig.gamma.drawStandard(s)
}
