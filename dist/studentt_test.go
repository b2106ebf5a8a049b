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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcatteeu/cl-random/dist"
	"github.com/dcatteeu/cl-random/stream"
)

func TestNewStudentT(t *testing.T) {
	_, err := dist.NewStudentT(0, 0, 1)
	assert.Error(t, err)
	_, err = dist.NewStudentT(0, 1, 0)
	assert.Error(t, err)
}

func TestStudentT(t *testing.T) {
	st, err := dist.NewStudentT(2, 1.5, 7)
	require.NoError(t, err)

	s := stream.NewMT19937(60)
	checkMoments(t, st, s)
	checkRoundTrip(t, st)

	variance, err := st.Variance()
	require.NoError(t, err)
	assert.InDelta(t, 1.5*1.5*7/5, variance, 1e-12)
}

func TestStudentTMoments(t *testing.T) {
	// The mean is the location parameter and exists for every nu; the
	// variance requires nu > 2.
	st, err := dist.NewStudentT(-1, 1, 1.5)
	require.NoError(t, err)

	mean, err := st.Mean()
	require.NoError(t, err)
	assert.Equal(t, -1.0, mean)

	_, err = st.Variance()
	assert.ErrorIs(t, err, dist.ErrUndefined)
}

func TestStudentTCDF(t *testing.T) {
	st, err := dist.NewStudentT(0, 1, 4)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, st.CDF(0), 1e-12)
	assert.InDelta(t, 1.0, st.CDF(0.5)+st.CDF(-0.5), 1e-12)
	assert.InDelta(t, 0.0, st.Quantile(0.5), 1e-12)
}
