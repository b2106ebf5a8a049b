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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

const salsaBlock = 64

// salsaSource generates uniform words from the Salsa20 keystream in
// counter mode. The key fully determines the sequence.
type salsaSource struct {
	key     [32]byte
	counter uint64
	buf     [salsaBlock]byte
	off     int
}

// NewSalsa20 returns a deterministic Stream keyed by the given 32-byte
// key. Two streams with the same key produce identical draw sequences,
// which makes sampling reproducible across runs and machines.
func NewSalsa20(key *[32]byte) *Stream {
	src := &salsaSource{off: salsaBlock}
	src.key = *key
	return New(src)
}

func (s *salsaSource) Uint64() uint64 {
	if s.off == salsaBlock {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return v
}

func (s *salsaSource) refill() {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.counter)
	s.counter++

	var zero [salsaBlock]byte
	salsa20.XORKeyStream(s.buf[:], zero[:], nonce[:], &s.key)
	s.off = 0
}
