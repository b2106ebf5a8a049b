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

// Package stream adapts a uniform random-bit source into the bounded
// uniform values consumed by the distribution samplers.
//
// A Stream wraps any Source of raw 64-bit words and exposes values
// uniformly distributed in [0, bound), for floating and integer bounds.
// All samplers in the dist package draw exclusively through a Stream;
// no implicit process-wide stream exists, so callers decide seeding and
// sharing.
package stream
