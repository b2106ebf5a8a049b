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
	"github.com/pkg/errors"
)

// ChiSquare is the chi-square distribution with nu degrees of freedom,
// a pure reparameterization of Gamma(nu/2, 1/2); it has no sampler of
// its own.
type ChiSquare struct {
	*Gamma
	nu float64
}

// NewChiSquare returns an instance of the ChiSquare distribution. It
// returns an error unless nu > 0.
func NewChiSquare(nu float64) (*ChiSquare, error) {
	if !(nu > 0) {
		return nil, errors.Errorf("degrees of freedom should be positive, got %v", nu)
	}
	gamma, err := NewGamma(nu/2, 0.5)
	if err != nil {
		return nil, err
	}

	return &ChiSquare{Gamma: gamma, nu: nu}, nil
}

// Nu returns the degrees of freedom.
func (c *ChiSquare) Nu() float64 {
	return c.nu
}

// InverseChiSquare is the scaled inverse chi-square distribution with
// nu degrees of freedom and scale s2, a pure reparameterization of
// InverseGamma(nu/2, nu*s2/2).
type InverseChiSquare struct {
	*InverseGamma
	nu float64
	s2 float64
}

// NewInverseChiSquare returns an instance of the InverseChiSquare
// distribution. It returns an error unless nu > 0 and s2 > 0.
func NewInverseChiSquare(nu, s2 float64) (*InverseChiSquare, error) {
	if !(nu > 0) {
		return nil, errors.Errorf("degrees of freedom should be positive, got %v", nu)
	}
	if !(s2 > 0) {
		return nil, errors.Errorf("scale should be positive, got %v", s2)
	}
	ig, err := NewInverseGamma(nu/2, nu*s2/2)
	if err != nil {
		return nil, err
	}

	return &InverseChiSquare{InverseGamma: ig, nu: nu, s2: s2}, nil
}

// Nu returns the degrees of freedom.
func (c *InverseChiSquare) Nu() float64 {
	return c.nu
}
