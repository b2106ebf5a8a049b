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

	"github.com/dcatteeu/cl-random/stream"
)

// drawStandardExponential returns one sample from the unit-rate
// exponential distribution by inversion. Float(1) is strictly below 1,
// so the argument of the logarithm is strictly positive. The primitive
// is shared by the gamma boost and the truncated-normal tail sampler.
func drawStandardExponential(s *stream.Stream) float64 {
	return -math.Log(1 - s.Float(1))
}

// Exponential is the exponential distribution with the given rate.
type Exponential struct {
	rate float64
}

// NewExponential returns an instance of the Exponential distribution.
// It returns an error unless rate > 0.
func NewExponential(rate float64) (*Exponential, error) {
	if !(rate > 0) {
		return nil, errors.Errorf("rate should be positive, got %v", rate)
	}

	return &Exponential{rate: rate}, nil
}

// Mean returns the analytic mean.
func (e *Exponential) Mean() (float64, error) {
	return 1 / e.rate, nil
}

// Variance returns the analytic variance.
func (e *Exponential) Variance() (float64, error) {
	return 1 / (e.rate * e.rate), nil
}

// LogPDF evaluates the log density at x.
func (e *Exponential) LogPDF(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return math.Log(e.rate) - e.rate*x
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant log(rate).
func (e *Exponential) UnnormalizedLogPDF(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return -e.rate * x
}

// CDF evaluates the distribution function at x.
func (e *Exponential) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return -math.Expm1(-e.rate * x)
}

// Quantile evaluates the quantile function at p in [0, 1).
func (e *Exponential) Quantile(p float64) float64 {
	return -math.Log1p(-p) / e.rate
}

// Draw returns one sample.
func (e *Exponential) Draw(s *stream.Stream) float64 {
	return drawStandardExponential(s) / e.rate
}
