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

// Uniform is the continuous uniform distribution on [left, right).
type Uniform struct {
	left  float64
	right float64
	// Precomputed interval width
	width float64
}

// NewUniform returns an instance of the Uniform distribution on
// [left, right). It returns an error unless left < right and both
// boundaries are finite.
func NewUniform(left, right float64) (*Uniform, error) {
	if math.IsNaN(left) || math.IsInf(left, 0) || math.IsNaN(right) || math.IsInf(right, 0) {
		return nil, errors.New("boundaries should be finite")
	}
	if left >= right {
		return nil, errors.Errorf("left boundary %v should be smaller than right boundary %v", left, right)
	}

	return &Uniform{
		left:  left,
		right: right,
		width: right - left,
	}, nil
}

// Mean returns the analytic mean.
func (u *Uniform) Mean() (float64, error) {
	return u.left + u.width/2, nil
}

// Variance returns the analytic variance.
func (u *Uniform) Variance() (float64, error) {
	return u.width * u.width / 12, nil
}

// LogPDF evaluates the log density at x.
func (u *Uniform) LogPDF(x float64) float64 {
	if x < u.left || x >= u.right {
		return math.Inf(-1)
	}
	return -math.Log(u.width)
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant; for the uniform family the density is all constant.
func (u *Uniform) UnnormalizedLogPDF(x float64) float64 {
	if x < u.left || x >= u.right {
		return math.Inf(-1)
	}
	return 0
}

// CDF evaluates the distribution function at x.
func (u *Uniform) CDF(x float64) float64 {
	switch {
	case x < u.left:
		return 0
	case x >= u.right:
		return 1
	default:
		return (x - u.left) / u.width
	}
}

// Quantile evaluates the quantile function at p in [0, 1].
func (u *Uniform) Quantile(p float64) float64 {
	return u.left + p*u.width
}

// Draw returns one sample in [left, right).
func (u *Uniform) Draw(s *stream.Stream) float64 {
	return u.left + s.Float(u.width)
}
