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
	"github.com/dcatteeu/cl-random/stream"
)

// Continuous is the capability shared by the univariate continuous
// families. Mean and Variance return ErrUndefined when the queried
// moment does not exist for the instance's parameters.
type Continuous interface {
	Mean() (float64, error)
	Variance() (float64, error)

	// LogPDF evaluates the log density at x; minus infinity outside
	// the support.
	LogPDF(x float64) float64

	// UnnormalizedLogPDF evaluates the log density without its
	// normalizing constant.
	UnnormalizedLogPDF(x float64) float64

	// Draw returns one sample, consuming values from s.
	Draw(s *stream.Stream) float64
}

// Discrete is the capability shared by the integer-valued families.
type Discrete interface {
	Mean() (float64, error)
	Variance() (float64, error)

	// LogPMF evaluates the log probability mass at k; minus infinity
	// outside the support.
	LogPMF(k int) float64

	Draw(s *stream.Stream) int
}

// Quantileable is implemented by families exposing distribution and
// quantile functions. CDF(Quantile(p)) == p for p in (0, 1) and
// Quantile(CDF(x)) == x on the support, up to floating-point error.
type Quantileable interface {
	CDF(x float64) float64
	Quantile(p float64) float64
}

var (
	_ Continuous = (*Uniform)(nil)
	_ Continuous = (*Exponential)(nil)
	_ Continuous = (*Normal)(nil)
	_ Continuous = (*TruncatedNormal)(nil)
	_ Continuous = (*LogNormal)(nil)
	_ Continuous = (*StudentT)(nil)
	_ Continuous = (*Gamma)(nil)
	_ Continuous = (*InverseGamma)(nil)
	_ Continuous = (*ChiSquare)(nil)
	_ Continuous = (*InverseChiSquare)(nil)
	_ Continuous = (*Beta)(nil)

	_ Discrete = (*DiscreteDist)(nil)
	_ Discrete = (*Bernoulli)(nil)
	_ Discrete = (*Binomial)(nil)
	_ Discrete = (*Geometric)(nil)
	_ Discrete = (*Poisson)(nil)

	_ Quantileable = (*Uniform)(nil)
	_ Quantileable = (*Exponential)(nil)
	_ Quantileable = (*Normal)(nil)
	_ Quantileable = (*TruncatedNormal)(nil)
	_ Quantileable = (*LogNormal)(nil)
	_ Quantileable = (*StudentT)(nil)
	_ Quantileable = (*Gamma)(nil)
	_ Quantileable = (*InverseGamma)(nil)
	_ Quantileable = (*Beta)(nil)
)
