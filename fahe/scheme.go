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

	"github.com/pkg/errors"
)

// Scheme is a configured FAHE1 or FAHE2 instance: derived parameters plus a
// freshly generated key pair. A Scheme is safe for concurrent Encrypt,
// EncryptBatch and Decrypt calls once constructed (section 5); it must not
// be mutated after New returns.
type Scheme struct {
	params *Params
	keys   *KeyPair

	msgSize      int
	numAdditions int

	csprng   CSPRNG
	primeGen PrimeGenerator
}

// New configures a new Scheme instance and performs key generation. msgSize
// is advisory (consumed by external test/benchmark collaborators to bound
// random message draws; the core only ever enforces 0 <= m < 2^mMax).
// numAdditions is the caller's declared homomorphic-addition budget; it is
// stored for accessors but not enforced internally (section 6).
func New(variant Variant, lambda, mMax, alpha, msgSize, numAdditions int) (*Scheme, error) {
	return NewWithDeps(variant, lambda, mMax, alpha, msgSize, numAdditions, DefaultCSPRNG(), DefaultPrimeGenerator())
}

// NewWithDeps is New with an explicit CSPRNG and PrimeGenerator, following
// the same override-point the core exposes for deterministic testing
// (section 6). Production callers should use New.
func NewWithDeps(variant Variant, lambda, mMax, alpha, msgSize, numAdditions int, csprng CSPRNG, primeGen PrimeGenerator) (*Scheme, error) {
	params, err := deriveParams(variant, lambda, mMax, alpha)
	if err != nil {
		return nil, err
	}

	keys, err := generateKeys(params, csprng, primeGen)
	if err != nil {
		return nil, err
	}

	return &Scheme{
		params:       params,
		keys:         keys,
		msgSize:      msgSize,
		numAdditions: numAdditions,
		csprng:       csprng,
		primeGen:     primeGen,
	}, nil
}

// generateKeys runs section 4.3's key generation procedure for either
// variant and assembles the tagged ek/dk pair.
func generateKeys(params *Params, csprng CSPRNG, primeGen PrimeGenerator) (*KeyPair, error) {
	p, err := primeGen.Prime(params.Eta)
	if err != nil {
		return nil, err
	}

	// X_bound = floor(2^gamma / p), computed as exact integer division
	// (section 9: replace the source's high-precision-real X with the
	// integer it is always truncated to before use).
	twoToGamma := new(big.Int).Lsh(big.NewInt(1), uint(params.Gamma))
	xBound := new(big.Int).Div(twoToGamma, p)

	switch params.Variant {
	case FAHE1:
		return &KeyPair{
			Encrypt: FAHE1EncryptKey{P: p, XBound: xBound, Rho: params.Rho, Alpha: params.Alpha},
			Decrypt: FAHE1DecryptKey{P: p, MMax: params.MMax, Rho: params.Rho, Alpha: params.Alpha},
		}, nil
	case FAHE2:
		// pos is drawn uniformly from [0, lambda+1], i.e. lambda+2
		// possible outcomes (section 3, section 9: the source's wider
		// range is the adopted behaviour here).
		posBig, err := csprng.UniformBelowInclusive(big.NewInt(int64(params.Lambda + 1)))
		if err != nil {
			return nil, err
		}
		pos := int(posBig.Int64())
		return &KeyPair{
			Encrypt: FAHE2EncryptKey{P: p, XBound: xBound, Pos: pos, MMax: params.MMax, Lambda: params.Lambda, Alpha: params.Alpha},
			Decrypt: FAHE2DecryptKey{P: p, Pos: pos, MMax: params.MMax, Alpha: params.Alpha},
		}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidParameter, "unknown variant %v", params.Variant)
	}
}

// Lambda returns the scheme's security parameter.
func (s *Scheme) Lambda() int { return s.params.Lambda }

// MMax returns the scheme's maximum plaintext bit-width.
func (s *Scheme) MMax() int { return s.params.MMax }

// Alpha returns the scheme's additivity parameter.
func (s *Scheme) Alpha() int { return s.params.Alpha }

// MsgSize returns the advisory message-size hint passed to New.
func (s *Scheme) MsgSize() int { return s.msgSize }

// NumAdditions returns the caller's declared homomorphic-addition budget.
func (s *Scheme) NumAdditions() int { return s.numAdditions }

// Params returns the scheme's derived (rho, eta, gamma) parameters.
func (s *Scheme) Params() Params { return *s.params }

// Variant returns FAHE1 or FAHE2.
func (s *Scheme) Variant() Variant { return s.params.Variant }

// Keys returns the scheme's key pair. Exposed for callers that need to
// distribute ek and dk separately.
func (s *Scheme) Keys() *KeyPair { return s.keys }

// checkMessageBound validates 0 <= m < 2^mMax (sections 4.4, 4.6).
func checkMessageBound(m *big.Int, mMax int) error {
	if m.Sign() < 0 {
		return errors.Wrap(ErrInvalidMessage, "message is negative")
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(mMax))
	if m.Cmp(bound) >= 0 {
		return errors.Wrapf(ErrInvalidMessage, "message has more than %d bits", mMax)
	}
	return nil
}

// Encrypt encrypts message m under the scheme's encryption key, dispatching
// to the FAHE1 or FAHE2 bit layout (sections 4.4, 4.6). It fails with
// ErrInvalidMessage if m does not satisfy 0 <= m < 2^MMax().
func (s *Scheme) Encrypt(m *big.Int) (*big.Int, error) {
	if err := checkMessageBound(m, s.params.MMax); err != nil {
		return nil, err
	}

	switch ek := s.keys.Encrypt.(type) {
	case FAHE1EncryptKey:
		return encryptFAHE1(ek, m, s.csprng)
	case FAHE2EncryptKey:
		return encryptFAHE2(ek, m, s.csprng)
	default:
		return nil, errors.Wrapf(ErrInvalidParameter, "unknown encrypt key type %T", ek)
	}
}

// EncryptBatch encrypts each message in ms independently; there is no
// cross-ciphertext state (section 6).
func (s *Scheme) EncryptBatch(ms []*big.Int) ([]*big.Int, error) {
	out := make([]*big.Int, len(ms))
	for i, m := range ms {
		c, err := s.Encrypt(m)
		if err != nil {
			return nil, errors.Wrapf(err, "encrypting message %d", i)
		}
		out[i] = c
	}
	return out, nil
}

// Decrypt decrypts ciphertext c, which may be the sum of up to
// 2^(Alpha()-1) encryptions under this scheme's key, returning the
// plaintext sum modulo 2^MMax() (sections 4.5, 4.7). Decrypting a
// ciphertext summed past that budget, or produced under a different key,
// returns a value without error: FAHE carries no authentication tag
// (section 7).
func (s *Scheme) Decrypt(c *big.Int) (*big.Int, error) {
	switch dk := s.keys.Decrypt.(type) {
	case FAHE1DecryptKey:
		return decryptFAHE1(dk, c), nil
	case FAHE2DecryptKey:
		return decryptFAHE2(dk, c), nil
	default:
		return nil, errors.Wrapf(ErrInvalidParameter, "unknown decrypt key type %T", dk)
	}
}
