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
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// CSPRNG is the trait the core draws all key- and ciphertext-affecting
// randomness through. Implementations must be safe for concurrent use
// (section 5): either by internal synchronisation, or by being handed out
// one instance per goroutine. The default implementation delegates to
// crypto/rand and needs no synchronisation of its own since crypto/rand.Reader
// is already safe for concurrent use.
type CSPRNG interface {
	// UniformBits draws a uniformly random integer in [0, 2^k).
	UniformBits(k int) (*big.Int, error)
	// UniformBelow draws a uniformly random integer in [0, n), exclusive.
	// This is the draw used for the encryption multiplier q (section 4.4,
	// 4.6), matching the paper's exclusive formulation rather than the
	// source's off-by-one inclusive draw (section 9).
	UniformBelow(n *big.Int) (*big.Int, error)
	// UniformBelowInclusive draws a uniformly random integer in [0, n].
	UniformBelowInclusive(n *big.Int) (*big.Int, error)
}

// systemCSPRNG is the default CSPRNG, backed by crypto/rand.
type systemCSPRNG struct{}

// DefaultCSPRNG returns the library's default cryptographically strong
// randomness source.
func DefaultCSPRNG() CSPRNG {
	return systemCSPRNG{}
}

func (systemCSPRNG) UniformBits(k int) (*big.Int, error) {
	if k <= 0 {
		return big.NewInt(0), nil
	}
	max := new(big.Int).Lsh(big.NewInt(1), uint(k))
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, errors.Wrap(ErrRngFailure, err.Error())
	}
	return n, nil
}

func (systemCSPRNG) UniformBelow(n *big.Int) (*big.Int, error) {
	v, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil, errors.Wrap(ErrRngFailure, err.Error())
	}
	return v, nil
}

func (systemCSPRNG) UniformBelowInclusive(n *big.Int) (*big.Int, error) {
	// rand.Int draws from [0, max), so the inclusive upper bound n
	// requires max = n+1.
	max := new(big.Int).Add(n, big.NewInt(1))
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, errors.Wrap(ErrRngFailure, err.Error())
	}
	return v, nil
}
