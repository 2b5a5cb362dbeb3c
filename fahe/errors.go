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

import "errors"

// Sentinel errors for the taxonomy of fallible operations. Use errors.Is
// against these; wrapping (via github.com/pkg/errors) adds call-site
// context without losing the sentinel identity.
var (
	// ErrInvalidParameter is returned when lambda, mMax or alpha violate
	// the preconditions of parameter derivation.
	ErrInvalidParameter = errors.New("fahe: invalid parameter")

	// ErrInvalidMessage is returned when a message m does not satisfy
	// 0 <= m < 2^mMax.
	ErrInvalidMessage = errors.New("fahe: message outside valid range")

	// ErrRngFailure is returned when the CSPRNG refuses a draw.
	ErrRngFailure = errors.New("fahe: csprng refused a draw")

	// ErrPrimeGenerationFailure is returned only after an implausibly long
	// prime search, surfacing a probable RNG failure. It should be
	// unreachable in practice.
	ErrPrimeGenerationFailure = errors.New("fahe: prime search did not converge")
)
