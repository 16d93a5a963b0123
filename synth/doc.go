// SPDX-License-Identifier: EPL-2.0

// Package synth renders piano-like tones by additive synthesis.
//
// Each note is the sum of a fixed table of partials. Every partial decays at
// its own rate and is slightly sharpened by string inharmonicity, which grows
// with the fundamental. The sum is shaped by a four phase Envelope:
//
//	s := synth.New()
//	buf, err := s.Synthesize(440, 4.0, 44100)
//
// The output is not normalized; see audio.Normalize.
package synth
