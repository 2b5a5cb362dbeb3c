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

import "math/big"

// EncryptKey is the encryption-side projection of a key pair. Exactly one
// of FAHE1EncryptKey or FAHE2EncryptKey implements it, per variant
// (section 9: a tagged sum of two record variants, not a positional
// tuple, to rule out the field-order bugs the source exhibits).
type EncryptKey interface {
	scheme() Variant
}

// DecryptKey is the decryption-side projection of a key pair.
type DecryptKey interface {
	scheme() Variant
}

// FAHE1EncryptKey holds everything FAHE1 encryption needs.
type FAHE1EncryptKey struct {
	P      *big.Int // secret prime, eta bits
	XBound *big.Int // floor(2^gamma / p); q is drawn from [0, XBound)
	Rho    int
	Alpha  int
}

func (FAHE1EncryptKey) scheme() Variant { return FAHE1 }

// FAHE1DecryptKey holds everything FAHE1 decryption needs.
type FAHE1DecryptKey struct {
	P     *big.Int
	MMax  int
	Rho   int
	Alpha int
}

func (FAHE1DecryptKey) scheme() Variant { return FAHE1 }

// FAHE2EncryptKey holds everything FAHE2 encryption needs, including the
// per-key noise split point pos.
type FAHE2EncryptKey struct {
	P      *big.Int
	XBound *big.Int
	Pos    int
	MMax   int
	Lambda int
	Alpha  int
}

func (FAHE2EncryptKey) scheme() Variant { return FAHE2 }

// FAHE2DecryptKey holds everything FAHE2 decryption needs.
type FAHE2DecryptKey struct {
	P     *big.Int
	Pos   int
	MMax  int
	Alpha int
}

func (FAHE2DecryptKey) scheme() Variant { return FAHE2 }

// KeyPair is the full key k = ek union dk (section 3). It is produced once
// by key generation, is immutable, and is not otherwise used directly by
// the core: callers distribute Encrypt and Decrypt separately.
type KeyPair struct {
	Encrypt EncryptKey
	Decrypt DecryptKey
}
