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

// Binomial is the binomial distribution counting successes among n
// independent trials with success probability pr.
//
// Draw sums n Bernoulli trials, so one draw costs O(n) stream values.
// This is the naive algorithm; it is acceptable for small n only.
type Binomial struct {
	bernoulli *Bernoulli
	n         int
}

// NewBinomial returns an instance of the Binomial distribution. It
// returns an error unless pr is in [0, 1] and n > 0.
func NewBinomial(pr float64, n int) (*Binomial, error) {
	bernoulli, err := NewBernoulli(pr)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, errors.Errorf("trial count should be positive, got %v", n)
	}

	return &Binomial{bernoulli: bernoulli, n: n}, nil
}

// Mean returns the analytic mean.
func (b *Binomial) Mean() (float64, error) {
	return float64(b.n) * b.bernoulli.pr, nil
}

// Variance returns the analytic variance.
func (b *Binomial) Variance() (float64, error) {
	pr := b.bernoulli.pr
	return float64(b.n) * pr * (1 - pr), nil
}

// xLogY returns x*log(y) with the convention 0*log(0) = 0, so the
// degenerate probabilities 0 and 1 yield a mass of 1 at their single
// support point instead of NaN.
func xLogY(x int, y float64) float64 {
	if x == 0 {
		return 0
	}
	return float64(x) * math.Log(y)
}

// LogPMF evaluates the log probability mass at k.
func (b *Binomial) LogPMF(k int) float64 {
	if k < 0 || k > b.n {
		return math.Inf(-1)
	}
	pr := b.bernoulli.pr
	lgN, _ := math.Lgamma(float64(b.n) + 1)
	lgK, _ := math.Lgamma(float64(k) + 1)
	lgNK, _ := math.Lgamma(float64(b.n-k) + 1)
	return lgN - lgK - lgNK + xLogY(k, pr) + xLogY(b.n-k, 1-pr)
}

// Draw returns the number of successes among n trials.
func (b *Binomial) Draw(s *stream.Stream) int {
	sum := 0
	for i := 0; i < b.n; i++ {
		sum += b.bernoulli.Draw(s)
	}
	return sum
}
