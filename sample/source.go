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

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

const detBlockLen = 64

// DetSource is a deterministic rand.Source whose stream is the Salsa20
// keystream under a caller-supplied key. Two sources with the same key
// emit identical streams, giving a reproducible generator that is
// isolated from the package-shared one. It implements the Source
// interface of golang.org/x/exp/rand and can therefore back both a
// sampler and any gonum distribution used as its proposal.
type DetSource struct {
	key   [32]byte
	block uint64
	buf   [detBlockLen]byte
	off   int
}

// NewDetSource returns an instance of the DetSource generator
// determined by key.
func NewDetSource(key *[32]byte) *DetSource {
	s := &DetSource{key: *key}
	s.off = detBlockLen
	return s
}

// Uint64 returns the next 64 bits of the keystream.
func (s *DetSource) Uint64() uint64 {
	if s.off == detBlockLen {
		var in [detBlockLen]byte
		var nonce [8]byte
		binary.LittleEndian.PutUint64(nonce[:], s.block)
		salsa20.XORKeyStream(s.buf[:], in[:], nonce[:], &s.key)
		s.block++
		s.off = 0
	}

	v := binary.LittleEndian.Uint64(s.buf[s.off : s.off+8])
	s.off += 8
	return v
}

// Seed rewinds the stream and replaces the key with one derived from
// seed. Sources seeded with the same value emit identical streams.
func (s *DetSource) Seed(seed uint64) {
	var key [32]byte
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:i+8], seed)
	}
	s.key = key
	s.block = 0
	s.off = detBlockLen
}
