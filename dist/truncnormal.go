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

// TruncatedNormal is a normal distribution restricted to [left, inf).
type TruncatedNormal struct {
	mean  float64
	sigma float64
	left  float64
	// Standardized left boundary
	bound float64
	// Optimal tilt of the exponential proposal for the tail sampler
	tilt  float64
	cache cache.Cache
}

// NewTruncatedNormal returns an instance of the normal distribution
// with the given location and scale, truncated to values not below
// left. It returns an error unless sigma > 0 and left is finite.
func NewTruncatedNormal(mean, sigma, left float64) (*TruncatedNormal, error) {
	if !(sigma > 0) {
		return nil, errors.Errorf("sigma should be positive, got %v", sigma)
	}
	if math.IsNaN(left) || math.IsInf(left, 0) {
		return nil, errors.Errorf("left boundary should be finite, got %v", left)
	}

	bound := (left - mean) / sigma

	return &TruncatedNormal{
		mean:  mean,
		sigma: sigma,
		left:  left,
		bound: bound,
		tilt:  (bound + math.Sqrt(bound*bound+4)) / 2,
	}, nil
}

// NewTruncatedNormalBetween would construct a normal distribution
// truncated on both sides. Two-sided truncation is recognized but not
// implemented; the constructor always returns ErrNotImplemented.
func NewTruncatedNormalBetween(mean, sigma, left, right float64) (*TruncatedNormal, error) {
	return nil, errors.Wrap(ErrNotImplemented, "two-sided truncation")
}

// tailMass returns the cached probability mass of the untruncated
// normal above the left boundary.
func (t *TruncatedNormal) tailMass() float64 {
	m, _ := cache.Get(&t.cache, "tailMass", func() (float64, error) {
		return standardNormalCDF(-t.bound), nil
	})
	return m
}

// hazard returns the cached hazard function of the standard normal at
// the standardized boundary.
func (t *TruncatedNormal) hazard() float64 {
	mass := t.tailMass()
	h, _ := cache.Get(&t.cache, "hazard", func() (float64, error) {
		return math.Exp(standardNormalLogPDF(t.bound)) / mass, nil
	})
	return h
}

// Mean returns the analytic mean. It always exceeds the boundary.
func (t *TruncatedNormal) Mean() (float64, error) {
	return t.mean + t.sigma*t.hazard(), nil
}

// Variance returns the analytic variance.
func (t *TruncatedNormal) Variance() (float64, error) {
	h := t.hazard()
	return t.sigma * t.sigma * (1 + t.bound*h - h*h), nil
}

// LogPDF evaluates the log density at x.
func (t *TruncatedNormal) LogPDF(x float64) float64 {
	if x < t.left {
		return math.Inf(-1)
	}
	mass := t.tailMass()
	c, _ := cache.Get(&t.cache, "logPDFConst", func() (float64, error) {
		return -math.Log(t.sigma) - math.Log(mass), nil
	})
	z := (x - t.mean) / t.sigma
	return standardNormalLogPDF(z) + c
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant.
func (t *TruncatedNormal) UnnormalizedLogPDF(x float64) float64 {
	if x < t.left {
		return math.Inf(-1)
	}
	z := (x - t.mean) / t.sigma
	return -z * z / 2
}

// CDF evaluates the distribution function at x. CDF(left) is exactly 0.
func (t *TruncatedNormal) CDF(x float64) float64 {
	if x <= t.left {
		return 0
	}
	z := (x - t.mean) / t.sigma
	return (standardNormalCDF(z) - standardNormalCDF(t.bound)) / t.tailMass()
}

// Quantile evaluates the quantile function at p in (0, 1).
func (t *TruncatedNormal) Quantile(p float64) float64 {
	q := standardNormalQuantile(standardNormalCDF(t.bound) + p*t.tailMass())
	return t.mean + t.sigma*q
}

// Draw returns one sample, never below the left boundary.
//
// When the standardized boundary is not positive, candidates from the
// standard normal are accepted once they clear the boundary; at least
// half of them do. Otherwise candidates come from an exponential
// proposal shifted to the boundary and tilted by the optimal rate
// (bound+sqrt(bound^2+4))/2, which maximizes the acceptance probability
// over all exponential proposals.
func (t *TruncatedNormal) Draw(s *stream.Stream) float64 {
	if t.bound <= 0 {
		for {
			z := drawStandardNormal(s)
			if z >= t.bound {
				return t.mean + t.sigma*z
			}
		}
	}

	for {
		z := t.bound + drawStandardExponential(s)/t.tilt
		d := z - t.tilt
		if s.Float(1) <= math.Exp(-d*d/2) {
			return t.mean + t.sigma*z
		}
	}
}
