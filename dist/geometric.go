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

// Geometric is the geometric distribution counting the Bernoulli trials
// up to and including the first success; its support starts at 1.
type Geometric struct {
	bernoulli *Bernoulli
}

// NewGeometric returns an instance of the Geometric distribution. It
// returns an error unless pr is in (0, 1]; pr must be strictly positive
// for draws to terminate.
func NewGeometric(pr float64) (*Geometric, error) {
	if !(pr > 0) {
		return nil, errors.Errorf("probability should be strictly positive, got %v", pr)
	}
	bernoulli, err := NewBernoulli(pr)
	if err != nil {
		return nil, err
	}

	return &Geometric{bernoulli: bernoulli}, nil
}

// Mean returns the analytic mean.
func (g *Geometric) Mean() (float64, error) {
	return 1 / g.bernoulli.pr, nil
}

// Variance returns the analytic variance.
func (g *Geometric) Variance() (float64, error) {
	pr := g.bernoulli.pr
	return (1 - pr) / (pr * pr), nil
}

// LogPMF evaluates the log probability mass at k.
func (g *Geometric) LogPMF(k int) float64 {
	if k < 1 {
		return math.Inf(-1)
	}
	pr := g.bernoulli.pr
	return xLogY(k-1, 1-pr) + math.Log(pr)
}

// Draw returns the number of trials until the first success, at least
// 1. The loop is unbounded but terminates almost surely since pr > 0.
func (g *Geometric) Draw(s *stream.Stream) int {
	count := 1
	for g.bernoulli.Draw(s) == 0 {
		count++
	}
	return count
}
