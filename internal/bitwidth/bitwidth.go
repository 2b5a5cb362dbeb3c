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

// Package bitwidth holds the shift/mask primitives shared by the FAHE1 and
// FAHE2 bit layouts. Isolating them in one place keeps the two codecs from
// drifting apart on an off-by-one, the exact class of bug the source
// repeatedly exhibits (spec section 1).
package bitwidth

import "math/big"

// Mask returns (1<<bits) - 1, the bitmask selecting the low `bits` bits.
func Mask(bits int) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits)), big.NewInt(1))
}

// ShiftLeft returns x << bits.
func ShiftLeft(x *big.Int, bits int) *big.Int {
	return new(big.Int).Lsh(x, uint(bits))
}

// ShiftRight returns x >> bits.
func ShiftRight(x *big.Int, bits int) *big.Int {
	return new(big.Int).Rsh(x, uint(bits))
}

// ExtractField shifts x right by `shift` bits, then masks to `width` bits.
// This is the decryption-side "shift then AND" step both schemes' decrypt
// operations perform (spec sections 4.5, 4.7) and it must always be
// applied together: a shift without the trailing mask is the bug class the
// spec calls out (section 4.5 note, section 9).
func ExtractField(x *big.Int, shift, width int) *big.Int {
	shifted := ShiftRight(x, shift)
	return new(big.Int).And(shifted, Mask(width))
}
