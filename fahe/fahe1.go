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

// encryptFAHE1 implements section 4.4:
//
//	M = (m << (rho + alpha)) + noise,  noise uniform in [0, 2^rho)
//	c = p*q + M,                       q uniform in [0, XBound)
//
// The message bound (0 <= m < 2^mMax) is enforced by Scheme.Encrypt before
// this is called: FAHE1EncryptKey does not carry mMax (section 3), so the
// check cannot be repeated here from the key alone.
func encryptFAHE1(ek FAHE1EncryptKey, m *big.Int, csprng CSPRNG) (*big.Int, error) {
	noise, err := csprng.UniformBits(ek.Rho)
	if err != nil {
		return nil, err
	}

	q, err := csprng.UniformBelow(ek.XBound)
	if err != nil {
		return nil, err
	}

	msg := bitwidth.ShiftLeft(m, ek.Rho+ek.Alpha)
	msg.Add(msg, noise)

	c := new(big.Int).Mul(ek.P, q)
	c.Add(c, msg)

	return c, nil
}

// decryptFAHE1 implements section 4.5:
//
//	t = c mod p
//	shifted = t >> (rho + alpha)
//	m_out = shifted AND ((1 << mMax) - 1)
//
// The trailing mask is mandatory (section 4.5 note, section 9): omitting it
// lets overflow from additive carries escape into the guard bits, breaking
// the "sum modulo 2^mMax" contract.
func decryptFAHE1(dk FAHE1DecryptKey, c *big.Int) *big.Int {
	t := new(big.Int).Mod(c, dk.P)
	return bitwidth.ExtractField(t, dk.Rho+dk.Alpha, dk.MMax)
}
