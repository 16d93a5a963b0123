// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestEnvelope_BoundaryValues(t *testing.T) {
	t.Parallel()

	e := DefaultEnvelope

	for _, d := range []float64{0.5, 1.0, 4.0, 10.0} {
		if got := e.Amplitude(0, d); got != 0 {
			t.Errorf("Amplitude(0, %v) = %v, want 0", d, got)
		}
		if got := e.Amplitude(e.Attack, d); math.Abs(got-1) > tolerance {
			t.Errorf("Amplitude(attack, %v) = %v, want 1", d, got)
		}
		if got := e.Amplitude(d, d); math.Abs(got) > tolerance {
			t.Errorf("Amplitude(%v, %v) = %v, want 0", d, d, got)
		}
	}
}

func TestEnvelope_Phases(t *testing.T) {
	t.Parallel()

	e := DefaultEnvelope
	const d = 4.0

	// Halfway through the attack.
	if got := e.Amplitude(e.Attack/2, d); math.Abs(got-0.5) > tolerance {
		t.Errorf("mid attack = %v, want 0.5", got)
	}

	// End of the decay reaches the sustain level.
	if got := e.Amplitude(e.Attack+e.Decay, d); math.Abs(got-e.SustainLevel) > tolerance {
		t.Errorf("end of decay = %v, want %v", got, e.SustainLevel)
	}

	// Sustain is an exponential ring-out.
	ts := e.Attack + e.Decay + 1
	want := e.SustainLevel * math.Exp(-e.SustainRate)
	if got := e.Amplitude(ts, d); math.Abs(got-want) > tolerance {
		t.Errorf("sustain at +1s = %v, want %v", got, want)
	}

	// Release uses 1 - p^2 from the level at release start.
	start := d - e.Release
	level := e.SustainLevel * math.Exp(-e.SustainRate*(start-e.Attack-e.Decay))
	mid := start + e.Release/2
	if got := e.Amplitude(mid, d); math.Abs(got-level*0.75) > tolerance {
		t.Errorf("mid release = %v, want %v", got, level*0.75)
	}
}

func TestEnvelope_OutsideNote(t *testing.T) {
	t.Parallel()

	if got := DefaultEnvelope.Amplitude(-0.1, 4); got != 0 {
		t.Errorf("Amplitude(-0.1) = %v, want 0", got)
	}
	if got := DefaultEnvelope.Amplitude(4.1, 4); got != 0 {
		t.Errorf("Amplitude(4.1, 4) = %v, want 0", got)
	}
}

func TestEnvelope_Continuity(t *testing.T) {
	t.Parallel()

	e := DefaultEnvelope
	const d = 4.0
	const eps = 1e-9

	for _, b := range []float64{e.Attack, e.Attack + e.Decay, d - e.Release} {
		before := e.Amplitude(b-eps, d)
		after := e.Amplitude(b, d)
		if math.Abs(before-after) > 1e-6 {
			t.Errorf("discontinuity at %v: %v -> %v", b, before, after)
		}
	}
}

func TestEnvelope_Range(t *testing.T) {
	t.Parallel()

	e := DefaultEnvelope
	const d = 4.0

	for i := 0; i <= 4000; i++ {
		tt := float64(i) / 1000
		a := e.Amplitude(tt, d)
		if a < 0 || a > 1 {
			t.Fatalf("Amplitude(%v) = %v outside [0,1]", tt, a)
		}
	}
}

func TestEnvelope_BindMatchesAmplitude(t *testing.T) {
	t.Parallel()

	e := DefaultEnvelope
	shape := e.Bind(2.5)

	if got := shape.ReleaseStart(); math.Abs(got-2.2) > tolerance {
		t.Errorf("ReleaseStart() = %v, want 2.2", got)
	}

	// Evaluate out of order: the result must not depend on call history.
	for _, tt := range []float64{2.4, 0.003, 1.7, 2.5, 0.05, 2.21} {
		if got, want := shape.At(tt), e.Amplitude(tt, 2.5); got != want {
			t.Errorf("Shape.At(%v) = %v, Amplitude = %v", tt, got, want)
		}
	}
}

func TestEnvelope_ShortNote(t *testing.T) {
	t.Parallel()

	// Release begins before the attack has finished.
	e := DefaultEnvelope
	const d = 0.2

	if got := e.Amplitude(d, d); got != 0 {
		t.Errorf("Amplitude(d, d) = %v, want 0", got)
	}
	if got := e.Amplitude(0, d); got != 0 {
		t.Errorf("Amplitude(0, d) = %v, want 0", got)
	}
}
