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

// LogNormal is the distribution of exp(X) where X is normal with the
// given log-mean and log-standard-deviation.
type LogNormal struct {
	logMean float64
	logSD   float64
	cache   cache.Cache
}

// NewLogNormal returns an instance of the LogNormal distribution. It
// returns an error unless logSD > 0.
func NewLogNormal(logMean, logSD float64) (*LogNormal, error) {
	if !(logSD > 0) {
		return nil, errors.Errorf("log standard deviation should be positive, got %v", logSD)
	}

	return &LogNormal{
		logMean: logMean,
		logSD:   logSD,
	}, nil
}

// Mean returns the analytic mean exp(logMean + logSD^2/2).
func (l *LogNormal) Mean() (float64, error) {
	return math.Exp(l.logMean + l.logSD*l.logSD/2), nil
}

// Variance returns the analytic variance.
func (l *LogNormal) Variance() (float64, error) {
	s2 := l.logSD * l.logSD
	return math.Expm1(s2) * math.Exp(2*l.logMean+s2), nil
}

// LogPDF evaluates the log density at x.
func (l *LogNormal) LogPDF(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	c, _ := cache.Get(&l.cache, "logPDFConst", func() (float64, error) {
		return -logSqrt2Pi - math.Log(l.logSD), nil
	})
	return l.UnnormalizedLogPDF(x) + c
}

// UnnormalizedLogPDF evaluates the log density without the normalizing
// constant.
func (l *LogNormal) UnnormalizedLogPDF(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	z := (math.Log(x) - l.logMean) / l.logSD
	return -z*z/2 - math.Log(x)
}

// CDF evaluates the distribution function at x.
func (l *LogNormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return standardNormalCDF((math.Log(x) - l.logMean) / l.logSD)
}

// Quantile evaluates the quantile function at p in (0, 1).
func (l *LogNormal) Quantile(p float64) float64 {
	return math.Exp(l.logMean + l.logSD*standardNormalQuantile(p))
}

// Draw returns one sample by exponentiating a normal draw.
func (l *LogNormal) Draw(s *stream.Stream) float64 {
	return math.Exp(l.logMean + l.logSD*drawStandardNormal(s))
}
