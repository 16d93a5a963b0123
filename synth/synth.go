// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"

	"github.com/ik5/pianogen/audio"
)

// Inharmonicity defaults: B is 0.0004 at 440 Hz and scales linearly with
// the fundamental.
const (
	DefaultInharmonicity    = 0.0004
	DefaultInharmonicityRef = 440.0
)

// Synthesizer renders notes by additive synthesis. It holds no state between
// calls and is safe for concurrent use as long as its fields are not modified.
type Synthesizer struct {
	Partials         []Partial
	Envelope         Envelope
	Inharmonicity    float64
	InharmonicityRef float64
}

// New returns a Synthesizer with the default partial table and envelope.
func New() *Synthesizer {
	return &Synthesizer{
		Partials:         DefaultPartials(),
		Envelope:         DefaultEnvelope,
		Inharmonicity:    DefaultInharmonicity,
		InharmonicityRef: DefaultInharmonicityRef,
	}
}

// Stretch returns the inharmonicity coefficient B for a fundamental.
func (s *Synthesizer) Stretch(frequency float64) float64 {
	if s.InharmonicityRef == 0 {
		return 0
	}

	return s.Inharmonicity * frequency / s.InharmonicityRef
}

// PartialFrequency returns the detuned frequency of p above frequency:
// f * r * sqrt(1 + B r^2).
func (s *Synthesizer) PartialFrequency(frequency float64, p Partial) float64 {
	b := s.Stretch(frequency)
	return frequency * p.Ratio * math.Sqrt(1+b*p.Ratio*p.Ratio)
}

type voice struct {
	amplitude float64
	decay     float64
	omega     float64 // rad/s
}

// Synthesize renders duration seconds of frequency at sampleRate. A zero
// frequency yields silence.
func (s *Synthesizer) Synthesize(frequency, duration float64, sampleRate int) (audio.Buffer, error) {
	if sampleRate <= 0 || duration <= 0 || frequency < 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return audio.Buffer{}, fmt.Errorf("%w: frequency %v, duration %v, sample rate %d",
			ErrInvalidParams, frequency, duration, sampleRate)
	}

	voices := make([]voice, len(s.Partials))
	for i, p := range s.Partials {
		if err := p.validate(); err != nil {
			return audio.Buffer{}, err
		}
		voices[i] = voice{
			amplitude: p.Amplitude,
			decay:     p.Decay,
			omega:     2 * math.Pi * s.PartialFrequency(frequency, p),
		}
	}

	buf := audio.NewBuffer(sampleRate, duration)
	shape := s.Envelope.Bind(duration)
	rate := float64(sampleRate)

	for i := range buf.Samples {
		t := float64(i) / rate

		sum := 0.0
		for _, v := range voices {
			sum += v.amplitude * math.Exp(-t*v.decay) * math.Sin(v.omega*t)
		}

		buf.Samples[i] = sum * shape.At(t)
	}

	return buf, nil
}
