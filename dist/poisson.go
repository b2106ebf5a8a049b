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

// Poisson is the Poisson distribution with the given lambda.
//
// Draw uses Knuth's multiplicative algorithm, which compares a running
// product of uniforms against exp(-lambda). The threshold underflows to
// zero for large lambda (around 746), at which point draws no longer
// terminate correctly; the algorithm is numerically unusable there and
// no alternative is provided. One draw also consumes O(lambda) stream
// values, so keep lambda small.
type Poisson struct {
	lambda float64
	// Precomputed acceptance threshold exp(-lambda)
	limit float64
}

// NewPoisson returns an instance of the Poisson distribution. It
// returns an error unless lambda > 0.
func NewPoisson(lambda float64) (*Poisson, error) {
	if !(lambda > 0) {
		return nil, errors.Errorf("lambda should be positive, got %v", lambda)
	}

	return &Poisson{
		lambda: lambda,
		limit:  math.Exp(-lambda),
	}, nil
}

// Mean returns the analytic mean.
func (p *Poisson) Mean() (float64, error) {
	return p.lambda, nil
}

// Variance returns the analytic variance.
func (p *Poisson) Variance() (float64, error) {
	return p.lambda, nil
}

// LogPMF evaluates the log probability mass at k.
func (p *Poisson) LogPMF(k int) float64 {
	if k < 0 {
		return math.Inf(-1)
	}
	lgK, _ := math.Lgamma(float64(k) + 1)
	return float64(k)*math.Log(p.lambda) - p.lambda - lgK
}

// Draw returns one count, multiplying uniforms until the running
// product drops below exp(-lambda).
func (p *Poisson) Draw(s *stream.Stream) int {
	k := 0
	prod := 1.0
	for {
		prod *= s.Float(1)
		if prod < p.limit {
			return k
		}
		k++
	}
}
