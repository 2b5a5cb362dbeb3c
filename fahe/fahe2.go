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

	"github.com/fentec-project/fahe/internal/bitwidth"
)

// encryptFAHE2 implements section 4.6, splitting the noise into two
// components straddling the message at the per-key split point pos:
//
//	noise1 = uniform value of width pos          (0 bits when pos == 0)
//	noise2 = uniform value of width (lambda - pos)
//	M = (noise2 << (pos + mMax + alpha))
//	  + (m      << (pos + alpha))
//	  + noise1
//	c = p*q + M,  q uniform in [0, XBound)
//
// The message bound (0 <= m < 2^mMax) is enforced by Scheme.Encrypt.
func encryptFAHE2(ek FAHE2EncryptKey, m *big.Int, csprng CSPRNG) (*big.Int, error) {
	noise1, err := csprng.UniformBits(ek.Pos)
	if err != nil {
		return nil, err
	}

	// pos is drawn from {0,...,lambda+1} (section 9), one value wider than
	// the paper's [0, lambda]; at pos == lambda+1, lambda-pos is negative
	// and UniformBits treats any non-positive width as zero bits, so
	// noise2 degenerates to the same "no entropy" case as pos == lambda.
	noise2, err := csprng.UniformBits(ek.Lambda - ek.Pos)
	if err != nil {
		return nil, err
	}

	q, err := csprng.UniformBelow(ek.XBound)
	if err != nil {
		return nil, err
	}

	msg := bitwidth.ShiftLeft(noise2, ek.Pos+ek.MMax+ek.Alpha)

	mTerm := bitwidth.ShiftLeft(m, ek.Pos+ek.Alpha)
	msg.Add(msg, mTerm)
	msg.Add(msg, noise1)

	c := new(big.Int).Mul(ek.P, q)
	c.Add(c, msg)

	return c, nil
}

// decryptFAHE2 implements section 4.7:
//
//	t = c mod p
//	shifted = t >> (pos + alpha)
//	m_out = shifted AND ((1 << mMax) - 1)
func decryptFAHE2(dk FAHE2DecryptKey, c *big.Int) *big.Int {
	t := new(big.Int).Mod(c, dk.P)
	return bitwidth.ExtractField(t, dk.Pos+dk.Alpha, dk.MMax)
}
