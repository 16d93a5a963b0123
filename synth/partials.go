// SPDX-License-Identifier: EPL-2.0

package synth

import "fmt"

// HarmonicDecay scales how much faster higher partials die out: partial n
// decays at n * HarmonicDecay per second.
const HarmonicDecay = 0.5

// Partial is one sinusoidal component of a note.
type Partial struct {
	Ratio     float64 // multiple of the fundamental
	Amplitude float64 // (0,1]
	Decay     float64 // 1/s
}

var partialAmplitudes = [8]float64{1.0, 0.5, 0.33, 0.25, 0.18, 0.12, 0.08, 0.05}

// DefaultPartials returns a fresh copy of the eight partial table.
func DefaultPartials() []Partial {
	partials := make([]Partial, len(partialAmplitudes))
	for i, amp := range partialAmplitudes {
		ratio := float64(i + 1)
		partials[i] = Partial{
			Ratio:     ratio,
			Amplitude: amp,
			Decay:     ratio * HarmonicDecay,
		}
	}

	return partials
}

func (p Partial) validate() error {
	if p.Ratio <= 0 || p.Amplitude <= 0 || p.Amplitude > 1 || p.Decay < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidPartial, p)
	}

	return nil
}
