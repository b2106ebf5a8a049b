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

	"github.com/dcatteeu/cl-random/data"
	"github.com/dcatteeu/cl-random/internal/cache"
	"github.com/dcatteeu/cl-random/stream"
)

// DiscreteDist is a distribution over the indices 0..n-1 with the given
// probabilities. Draws take constant time via Vose's alias method; the
// two tables are built once, on first draw, in linear time.
type DiscreteDist struct {
	probs data.Vector
	cache cache.Cache
}

// aliasTable holds the probability and alias columns of Vose's method.
type aliasTable struct {
	prob  []float64
	alias []int
}

// NewDiscrete returns an instance of the DiscreteDist distribution over
// the indices of probs. Probabilities are normalized by their sum; they
// must be non-negative, not all zero.
func NewDiscrete(probs []float64) (*DiscreteDist, error) {
	if len(probs) == 0 {
		return nil, errors.New("probabilities should not be empty")
	}

	sum := 0.0
	for i, p := range probs {
		if p < 0 || math.IsNaN(p) {
			return nil, errors.Errorf("probability %d should be non-negative, got %v", i, p)
		}
		sum += p
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return nil, errors.Errorf("probabilities should have a positive finite sum, got %v", sum)
	}

	return &DiscreteDist{
		probs: data.NewVector(probs).MulScalar(1 / sum),
	}, nil
}

// Probs returns a copy of the normalized probabilities.
func (d *DiscreteDist) Probs() []float64 {
	return d.probs.Copy()
}

// Mean returns the analytic mean of the index.
func (d *DiscreteDist) Mean() (float64, error) {
	m := 0.0
	for i, p := range d.probs {
		m += float64(i) * p
	}
	return m, nil
}

// Variance returns the analytic variance of the index.
func (d *DiscreteDist) Variance() (float64, error) {
	m, _ := d.Mean()
	v := 0.0
	for i, p := range d.probs {
		z := float64(i) - m
		v += z * z * p
	}
	return v, nil
}

// LogPMF evaluates the log probability mass at k.
func (d *DiscreteDist) LogPMF(k int) float64 {
	if k < 0 || k >= len(d.probs) {
		return math.Inf(-1)
	}
	return math.Log(d.probs[k])
}

// table returns the cached alias table.
func (d *DiscreteDist) table() *aliasTable {
	t, _ := cache.Get(&d.cache, "aliasTable", func() (*aliasTable, error) {
		return buildAliasTable(d.probs), nil
	})
	return t
}

// buildAliasTable builds the probability and alias columns in O(n).
// Every index passes through exactly one of the two worklists; an index
// leaving the small list is finalized, an index leaving the large list
// donates mass and re-enters one of the lists.
func buildAliasTable(probs data.Vector) *aliasTable {
	n := len(probs)
	t := &aliasTable{
		prob:  make([]float64, n),
		alias: make([]int, n),
	}

	scaled := probs.MulScalar(float64(n))
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, p := range scaled {
		if p < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		t.prob[s] = scaled[s]
		t.alias[s] = l
		scaled[l] += scaled[s] - 1
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Leftovers in either list hold probability 1 up to rounding; the
	// small list can be non-empty only through floating-point error.
	for _, l := range large {
		t.prob[l] = 1
	}
	for _, s := range small {
		t.prob[s] = 1
	}

	return t
}

// Draw returns one index. A single uniform in [0, n) is split into a
// column and a coin: the integer part picks column j, the fractional
// part decides between j and its alias.
func (d *DiscreteDist) Draw(s *stream.Stream) int {
	t := d.table()
	u := s.Float(float64(len(d.probs)))
	j := int(u)
	if u-float64(j) <= t.prob[j] {
		return j
	}
	return t.alias[j]
}
