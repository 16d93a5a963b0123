// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Envelope is a four phase amplitude curve: linear attack to 1, linear decay
// to SustainLevel, exponential ring-out at SustainRate, then a quadratic
// fade that reaches 0 exactly at the end of the note.
type Envelope struct {
	Attack       float64 // seconds
	Decay        float64 // seconds
	SustainLevel float64 // 0..1
	SustainRate  float64 // 1/s
	Release      float64 // seconds, measured back from the end of the note
}

// DefaultEnvelope is the envelope used for every rendered piano note.
var DefaultEnvelope = Envelope{
	Attack:       0.01,
	Decay:        0.1,
	SustainLevel: 0.7,
	SustainRate:  0.6,
	Release:      0.3,
}

// Amplitude returns the envelope value in [0,1] at t seconds into a note of
// the given duration. It is 0 outside [0, duration].
func (e Envelope) Amplitude(t, duration float64) float64 {
	return e.Bind(duration).At(t)
}

// Bind fixes the note duration and caches the level the release phase
// starts from.
func (e Envelope) Bind(duration float64) Shape {
	start := max(duration-e.Release, 0)

	return Shape{
		env:          e,
		duration:     duration,
		releaseStart: start,
		releaseLevel: e.held(start),
	}
}

// held evaluates attack, decay and sustain, ignoring the release.
func (e Envelope) held(t float64) float64 {
	switch {
	case t < e.Attack:
		return t / e.Attack
	case t < e.Attack+e.Decay:
		return 1 - (1-e.SustainLevel)*(t-e.Attack)/e.Decay
	default:
		return e.SustainLevel * math.Exp(-e.SustainRate*(t-e.Attack-e.Decay))
	}
}

// Shape is an Envelope bound to one note duration.
type Shape struct {
	env          Envelope
	duration     float64
	releaseStart float64
	releaseLevel float64
}

// ReleaseStart is the time at which the fade out begins.
func (s Shape) ReleaseStart() float64 { return s.releaseStart }

// At returns the amplitude at t seconds.
func (s Shape) At(t float64) float64 {
	switch {
	case t < 0 || t > s.duration:
		return 0
	case t < s.releaseStart:
		return s.env.held(t)
	case s.duration == s.releaseStart:
		return 0
	}

	p := (t - s.releaseStart) / (s.duration - s.releaseStart)

	return s.releaseLevel * (1 - p*p)
}
