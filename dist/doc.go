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

// Package dist implements probability-distribution objects supporting
// analytic moments, density evaluation, distribution and quantile
// functions, and pseudo-random sampling.
//
// Each family is an immutable value constructed by a NewX function that
// validates its parameters and derives the canonical internal
// representation once. Expensive derived quantities (normalizing
// constants, matrix square roots, alias tables) are computed lazily on
// first access and memoized for the instance's lifetime.
//
// Sampling consumes values from a stream.Stream supplied by the caller
// on every Draw; distributions never own or seed random state
// themselves, which keeps draws reproducible under a seeded stream and
// lets many distributions share one stream.
package dist
