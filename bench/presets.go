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

// Package bench is the external collaborator spec.md's section 1 excludes
// from the cryptographic core: configuration tables of benchmark parameter
// presets, a timed multi-trial harness, and CSV/plot reporting. It consumes
// the fahe core only through its public Scheme interface (section 6),
// never reaching into unexported internals.
package bench

import "github.com/fentec-project/fahe/fahe"

// Preset names one literal (variant, lambda, mMax, alpha, numAdditions)
// tuple to run trials against, mirroring the scenario table in spec.md
// section 8 and the larger configurations exercised by
// original_source/fahePy/tests/fahe_timed.py.
type Preset struct {
	Name         string
	Variant      fahe.Variant
	Lambda       int
	MMax         int
	Alpha        int
	MsgSize      int
	NumAdditions int
	// Message is the fixed plaintext used for additions when all summands
	// are identical (scenarios S1, S2). Messages overrides it with an
	// explicit per-trial sequence (scenario S3). MaxMessage overrides both,
	// using 2^MMax-1 as the fixed message (scenario S4, where the message
	// does not fit an int64 once MMax=64). At most one of the three should
	// be set; Harness resolves them in MaxMessage > Messages > Message
	// priority.
	Message    int64
	Messages   []int64
	MaxMessage bool
}

// Presets is the default table of benchmark configurations.
var Presets = []Preset{
	{
		Name: "fahe1-minimum", Variant: fahe.FAHE1,
		Lambda: 128, MMax: 32, Alpha: 6, MsgSize: 32,
		NumAdditions: 10, Message: 2364110189,
	},
	{
		Name: "fahe2-minimum", Variant: fahe.FAHE2,
		Lambda: 128, MMax: 32, Alpha: 29, MsgSize: 32,
		NumAdditions: 100, Message: 1,
	},
	{
		Name: "fahe1-small-msg-high-alpha", Variant: fahe.FAHE1,
		Lambda: 128, MMax: 32, Alpha: 33, MsgSize: 32,
		NumAdditions: 100, Messages: sequence(1, 100),
	},
	{
		Name: "fahe2-long-msg-boundary", Variant: fahe.FAHE2,
		Lambda: 256, MMax: 64, Alpha: 21, MsgSize: 64,
		NumAdditions: 1 << 20, MaxMessage: true,
	},
	{
		Name: "paranoid", Variant: fahe.FAHE1,
		Lambda: 256, MMax: 128, Alpha: 41, MsgSize: 128,
		NumAdditions: 1 << 20, Message: 1,
	},
}

func sequence(from, to int64) []int64 {
	out := make([]int64, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// PresetByName returns the preset with the given name, or false if none
// matches.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
