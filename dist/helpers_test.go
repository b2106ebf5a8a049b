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

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcatteeu/cl-random/dist"
	"github.com/dcatteeu/cl-random/stream"
)

const momentSamples = 200000

// moments returns the empirical mean and variance of n draws.
func moments(n int, draw func() float64) (float64, float64) {
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		x := draw()
		sum += x
		sumSq += x * x
	}
	m := sum / float64(n)
	return m, sumSq/float64(n) - m*m
}

// checkMoments draws momentSamples values and compares the empirical
// mean and variance against the analytic ones. The tolerances shrink
// as 1/sqrt(n).
func checkMoments(t *testing.T, d dist.Continuous, s *stream.Stream) {
	t.Helper()

	wantMean, err := d.Mean()
	require.NoError(t, err)
	wantVar, err := d.Variance()
	require.NoError(t, err)

	m, v := moments(momentSamples, func() float64 { return d.Draw(s) })

	sd := math.Sqrt(wantVar)
	assert.InDelta(t, wantMean, m, 6*sd/math.Sqrt(momentSamples)+1e-12,
		"empirical mean diverges from the analytic mean")
	assert.InDelta(t, wantVar, v, 0.1*wantVar+1e-12,
		"empirical variance diverges from the analytic variance")
}

// checkIntMoments is checkMoments for the integer-valued families.
func checkIntMoments(t *testing.T, d dist.Discrete, s *stream.Stream) {
	t.Helper()

	wantMean, err := d.Mean()
	require.NoError(t, err)
	wantVar, err := d.Variance()
	require.NoError(t, err)

	m, v := moments(momentSamples, func() float64 { return float64(d.Draw(s)) })

	sd := math.Sqrt(wantVar)
	assert.InDelta(t, wantMean, m, 6*sd/math.Sqrt(momentSamples)+1e-12,
		"empirical mean diverges from the analytic mean")
	assert.InDelta(t, wantVar, v, 0.1*wantVar+1e-12,
		"empirical variance diverges from the analytic variance")
}

// checkRoundTrip verifies the quantile/CDF round-trip law on a grid of
// probabilities.
func checkRoundTrip(t *testing.T, d dist.Quantileable) {
	t.Helper()

	for _, p := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
		x := d.Quantile(p)
		assert.InDelta(t, p, d.CDF(x), 1e-8, "CDF(Quantile(%v))", p)
		assert.InDelta(t, x, d.Quantile(d.CDF(x)), 1e-6*(1+math.Abs(x)), "Quantile(CDF(%v))", x)
	}
}
