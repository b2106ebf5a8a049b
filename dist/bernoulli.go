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

// Bernoulli is the Bernoulli distribution: Draw returns 1 with the
// given probability and 0 otherwise.
type Bernoulli struct {
	pr float64
	// Exact numerator/denominator when constructed from a ratio;
	// den == 0 marks the floating-point comparison path.
	num, den int
}

// NewBernoulli returns an instance of the Bernoulli distribution. It
// returns an error unless pr is in [0, 1]. The degenerate cases pr = 0
// and pr = 1 are valid.
func NewBernoulli(pr float64) (*Bernoulli, error) {
	if !(pr >= 0 && pr <= 1) {
		return nil, errors.Errorf("probability should be in [0, 1], got %v", pr)
	}

	return &Bernoulli{pr: pr}, nil
}

// NewBernoulliRatio returns a Bernoulli distribution with success
// probability num/den. Draws compare integers exactly, so a rational
// probability carries no floating-point bias.
func NewBernoulliRatio(num, den int) (*Bernoulli, error) {
	if den <= 0 {
		return nil, errors.Errorf("denominator should be positive, got %v", den)
	}
	if num < 0 || num > den {
		return nil, errors.Errorf("numerator should be in [0, %v], got %v", den, num)
	}

	return &Bernoulli{
		pr:  float64(num) / float64(den),
		num: num,
		den: den,
	}, nil
}

// Pr returns the success probability.
func (b *Bernoulli) Pr() float64 {
	return b.pr
}

// Mean returns the analytic mean.
func (b *Bernoulli) Mean() (float64, error) {
	return b.pr, nil
}

// Variance returns the analytic variance.
func (b *Bernoulli) Variance() (float64, error) {
	return b.pr * (1 - b.pr), nil
}

// LogPMF evaluates the log probability mass at k.
func (b *Bernoulli) LogPMF(k int) float64 {
	switch k {
	case 0:
		return math.Log(1 - b.pr)
	case 1:
		return math.Log(b.pr)
	default:
		return math.Inf(-1)
	}
}

// Draw returns 0 or 1.
func (b *Bernoulli) Draw(s *stream.Stream) int {
	if b.den > 0 {
		if s.Int(b.den) < b.num {
			return 1
		}
		return 0
	}
	if s.Float(1) < b.pr {
		return 1
	}
	return 0
}
