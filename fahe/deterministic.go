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

package fahe

import (
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// DeterministicSampler draws reproducible pseudo-random integers from a
// salsa20 keystream. It does NOT satisfy the CSPRNG interface and must
// never be used to draw key material or ciphertext randomness (section 9):
// it exists solely so that external test and benchmark collaborators can
// generate reproducible message lists without reaching for math/rand.
//
// Passing a DeterministicSampler's output into Encrypt as the message
// argument is fine (messages are public-shaped inputs, not randomness);
// passing it anywhere a CSPRNG is expected is a programming error.
type DeterministicSampler struct {
	key *[32]byte
}

// NewDeterministicSampler returns a sampler keyed by key. The same key
// always produces the same sequence of draws.
func NewDeterministicSampler(key *[32]byte) *DeterministicSampler {
	return &DeterministicSampler{key: key}
}

// UniformBelow draws a reproducible value in [0, max).
func (d *DeterministicSampler) UniformBelow(max *big.Int, counter uint64) *big.Int {
	maxBits := new(big.Int).Sub(max, big.NewInt(1)).BitLen()
	maxBytes := maxBits/8 + 1
	over := uint(8 - maxBits%8)
	if over == 8 {
		maxBytes--
		over = 0
	}

	nonce := make([]byte, 8)
	for i := 0; i < 8 && i < len(nonce); i++ {
		nonce[i] = byte(counter >> (8 * uint(i)))
	}

	for {
		in := make([]byte, maxBytes)
		out := make([]byte, maxBytes)
		salsa20.XORKeyStream(out, in, nonce, d.key)
		out[0] >>= over
		v := new(big.Int).SetBytes(out)
		if v.Cmp(max) < 0 {
			return v
		}
		counter++
		for i := 0; i < 8 && i < len(nonce); i++ {
			nonce[i] = byte(counter >> (8 * uint(i)))
		}
	}
}
