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

package stream

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source is an underlying generator of raw uniform 64-bit words.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// Stream adapts a Source into bounded uniform values. Consecutive draws
// consume and advance the source sequentially; the internal mutex makes
// a shared Stream safe to use from multiple goroutines.
type Stream struct {
	lock sync.Mutex
	src  Source
}

// New returns a Stream drawing from the provided source.
func New(src Source) *Stream {
	return &Stream{src: src}
}

// NewMT19937 returns a Stream backed by a Mersenne twister seeded with
// the given value. The same seed reproduces the same draw sequence.
func NewMT19937(seed uint64) *Stream {
	src := prng.NewMT19937()
	src.Seed(seed)
	return New(src)
}

// Uint64 returns a raw word from the source.
func (s *Stream) Uint64() uint64 {
	s.lock.Lock()
	n := s.src.Uint64()
	s.lock.Unlock()
	return n
}

// Float returns a value uniformly distributed in [0, bound). The result
// is strictly below bound; Float(1) never returns 1, so expressions of
// the form 1-Float(1) are safe to pass to math.Log.
// It panics unless bound is positive and finite; the redraw loop can
// never terminate otherwise.
func (s *Stream) Float(bound float64) float64 {
	if !(bound > 0) || math.IsInf(bound, 1) {
		panic("stream: float bound should be positive and finite")
	}
	for {
		// 53 random mantissa bits give a uniform value in [0, 1).
		u := float64(s.Uint64()>>11) / (1 << 53)
		v := u * bound
		// The product can round up to bound when u is at the top of
		// its range; redraw in that case to keep the interval open.
		if v < bound {
			return v
		}
	}
}

// Int returns an integer uniformly distributed in [0, bound).
// It panics if bound is not positive.
func (s *Stream) Int(bound int) int {
	if bound <= 0 {
		panic("stream: non-positive integer bound")
	}
	return int(s.uint64Inclusive(uint64(bound) - 1))
}

// uint64Inclusive returns a pseudo-random number in [0, n].
func (s *Stream) uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is a power of two, so we can just mask.
	case n&(n+1) == 0:
		return s.Uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we
	// get a number in the requested range.
	case n > math.MaxInt64:
		v := s.Uint64()
		for v > n {
			v = s.Uint64()
		}
		return v

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is
	// less than or equal to MaxInt64, then reduce.
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := s.uint63()
		for v > maximum {
			v = s.uint63()
		}
		return v % (n + 1)
	}
}

// uint63 returns a random number in [0, MaxInt64].
func (s *Stream) uint63() uint64 {
	return s.Uint64() & math.MaxInt64
}
