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

// ErrUndefined is returned when a moment or other quantity is queried
// outside its domain of definition, e.g. the mean of an inverse-gamma
// distribution with shape not greater than 1. The distribution itself
// is valid; only the queried quantity is not.
var ErrUndefined = errors.New("quantity undefined for these parameters")

// ErrNotImplemented is returned for operations that are recognized but
// deliberately unimplemented for a family or sub-case, e.g. two-sided
// truncation of a normal or marginalizing a multivariate t.
var ErrNotImplemented = errors.New("operation not implemented for this distribution")
