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

// Package fahe implements Fast Additive (partially) Homomorphic Encryption,
// the FAHE1 and FAHE2 schemes of Cominetti and Simplicio (2020), built on
// the hardness of the Approximate Common Divisor problem.
//
// A Scheme is a symmetric encryption scheme over non-negative integer
// messages bounded by 2^MMax: ciphertexts produced under the same key add
// under ordinary big-integer addition, and the sum decrypts to the sum of
// the plaintexts modulo 2^MMax, as long as no more than 2^(Alpha-1)
// ciphertexts are summed before decryption. The scheme carries no
// authentication: a ciphertext decrypted under the wrong key, or summed
// past its additivity budget, simply produces a wrong plaintext rather than
// an error.
package fahe
