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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcatteeu/cl-random/data"
)

func TestBuildAliasTable(t *testing.T) {
	var tests = []struct {
		name  string
		probs []float64
	}{
		{name: "Uniform", probs: []float64{0.25, 0.25, 0.25, 0.25}},
		{name: "Skewed", probs: []float64{0.2, 0.3, 0.5}},
		{name: "Single", probs: []float64{1}},
		{name: "Tiny", probs: []float64{0.999, 0.001}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tab := buildAliasTable(data.NewVector(test.probs))
			require.Len(t, tab.prob, len(test.probs))
			require.Len(t, tab.alias, len(test.probs))

			// Reconstructed probabilities must match the inputs: each
			// column j contributes prob[j]/n to j and (1-prob[j])/n to
			// its alias.
			n := float64(len(test.probs))
			rebuilt := make([]float64, len(test.probs))
			for j := range tab.prob {
				assert.True(t, tab.prob[j] >= 0 && tab.prob[j] <= 1+1e-12,
					"prob[%d] = %v outside [0, 1]", j, tab.prob[j])
				a := tab.alias[j]
				assert.True(t, a >= 0 && a < len(test.probs), "alias[%d] = %v out of range", j, a)
				rebuilt[j] += tab.prob[j] / n
				rebuilt[a] += (1 - tab.prob[j]) / n
			}
			for i, p := range test.probs {
				assert.InDelta(t, p, rebuilt[i], 1e-9)
			}
		})
	}
}
