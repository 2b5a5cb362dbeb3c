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
	"math"

	"github.com/pkg/errors"
)

// Variant selects which of the two Cominetti-Simplicio schemes a Params
// instance (and the Scheme built from it) implements.
type Variant int

const (
	// FAHE1 is the single-noise-term variant (rho = lambda).
	FAHE1 Variant = iota
	// FAHE2 is the split-noise variant (noise divided around the message
	// at a per-key position pos).
	FAHE2
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case FAHE1:
		return "FAHE1"
	case FAHE2:
		return "FAHE2"
	default:
		return "Variant(unknown)"
	}
}

// Params holds the derived noise, prime and ciphertext bit-widths for a
// scheme instance, per spec section 4.1. Params is immutable once derived.
type Params struct {
	Variant Variant
	Lambda  int // security parameter
	MMax    int // maximum plaintext bit-width
	Alpha   int // additivity parameter

	Rho   int // noise bit-width
	Eta   int // prime bit-width
	Gamma int // ciphertext bit-width
}

// deriveParams computes (rho, eta, gamma) from (lambda, mMax, alpha)
// according to the variant's formulas (spec section 3):
//
//	FAHE1: rho = lambda,            eta = rho + 2*alpha + mMax
//	FAHE2: rho = lambda+alpha+mMax, eta = rho + alpha
//	both:  gamma = ceil(rho / log2(rho) * (eta - rho)^2)
//
// lambda < 2, mMax < 1 or alpha < 2 are rejected with ErrInvalidParameter
// before any further computation (in particular, before any randomness is
// drawn by a subsequent key generation).
func deriveParams(variant Variant, lambda, mMax, alpha int) (*Params, error) {
	if lambda < 2 {
		return nil, errors.Wrapf(ErrInvalidParameter, "lambda must be >= 2, got %d", lambda)
	}
	if mMax < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "mMax must be >= 1, got %d", mMax)
	}
	if alpha < 2 {
		return nil, errors.Wrapf(ErrInvalidParameter, "alpha must be >= 2, got %d", alpha)
	}

	var rho, eta int
	switch variant {
	case FAHE1:
		rho = lambda
		eta = rho + 2*alpha + mMax
	case FAHE2:
		rho = lambda + alpha + mMax
		eta = rho + alpha
	default:
		return nil, errors.Wrapf(ErrInvalidParameter, "unknown variant %v", variant)
	}

	// rho is always a security-parameter-scale integer (tens to low
	// thousands), so a double-precision log2 is exact enough for this
	// ceiling; the dominant bit-widths (eta, gamma) stay in arbitrary
	// precision everywhere else.
	log2Rho := math.Log2(float64(rho))
	diff := float64(eta - rho)
	gammaF := float64(rho) / log2Rho * diff * diff
	gamma := int(math.Ceil(gammaF))

	return &Params{
		Variant: variant,
		Lambda:  lambda,
		MMax:    mMax,
		Alpha:   alpha,
		Rho:     rho,
		Eta:     eta,
		Gamma:   gamma,
	}, nil
}
