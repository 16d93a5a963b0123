// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"math"
	"slices"
	"sync"
	"testing"
)

func TestDefaultPartials(t *testing.T) {
	t.Parallel()

	partials := DefaultPartials()
	if len(partials) != 8 {
		t.Fatalf("len(DefaultPartials()) = %d, want 8", len(partials))
	}

	for i, p := range partials {
		if err := p.validate(); err != nil {
			t.Errorf("partial %d: %v", i, err)
		}
		if p.Decay != p.Ratio*HarmonicDecay {
			t.Errorf("partial %d decay = %v, want %v", i, p.Decay, p.Ratio*HarmonicDecay)
		}
	}

	// Callers get their own copy.
	partials[0].Amplitude = 0.01
	if DefaultPartials()[0].Amplitude != 1.0 {
		t.Error("modifying a returned table changed the default partials")
	}
}

func TestSynthesizer_Inharmonicity(t *testing.T) {
	t.Parallel()

	s := New()
	p := Partial{Ratio: 5, Amplitude: 1}

	low := s.PartialFrequency(100, p) / (100 * 5)
	high := s.PartialFrequency(2000, p) / (2000 * 5)

	if low <= 1 {
		t.Errorf("relative stretch at 100 Hz = %v, want > 1", low)
	}
	if high <= low {
		t.Errorf("stretch at 2000 Hz (%v) not greater than at 100 Hz (%v)", high, low)
	}

	if got := s.Stretch(440); got != DefaultInharmonicity {
		t.Errorf("Stretch(440) = %v, want %v", got, DefaultInharmonicity)
	}

	want := 440 * 5 * math.Sqrt(1+DefaultInharmonicity*25)
	if got := s.PartialFrequency(440, p); math.Abs(got-want) > 1e-9 {
		t.Errorf("PartialFrequency(440, 5) = %v, want %v", got, want)
	}
}

func TestSynthesize_Length(t *testing.T) {
	t.Parallel()

	buf, err := New().Synthesize(440, 0.5, 8000)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if buf.Len() != 4000 {
		t.Errorf("Len() = %d, want 4000", buf.Len())
	}
	if buf.SampleRate != 8000 || buf.Duration != 0.5 {
		t.Errorf("buffer = %d Hz / %v s, want 8000 Hz / 0.5 s", buf.SampleRate, buf.Duration)
	}
	if buf.Samples[0] != 0 {
		t.Errorf("first sample = %v, want 0", buf.Samples[0])
	}
	if buf.Peak() == 0 {
		t.Error("Synthesize() produced silence")
	}
}

func TestSynthesize_MatchesFormula(t *testing.T) {
	t.Parallel()

	s := New()
	const (
		freq = 261.63
		dur  = 1.0
		rate = 4000
	)

	buf, err := s.Synthesize(freq, dur, rate)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	b := DefaultInharmonicity * freq / DefaultInharmonicityRef
	for _, i := range []int{1, 17, 250, 600, 1100, 3900} {
		tt := float64(i) / rate
		sum := 0.0
		for _, p := range DefaultPartials() {
			f := freq * p.Ratio * math.Sqrt(1+b*p.Ratio*p.Ratio)
			sum += p.Amplitude * math.Exp(-tt*p.Ratio*HarmonicDecay) * math.Sin(2*math.Pi*f*tt)
		}
		want := sum * DefaultEnvelope.Amplitude(tt, dur)

		if math.Abs(buf.Samples[i]-want) > 1e-9 {
			t.Errorf("sample %d = %v, want %v", i, buf.Samples[i], want)
		}
	}
}

func TestSynthesize_ZeroFrequencyIsSilent(t *testing.T) {
	t.Parallel()

	buf, err := New().Synthesize(0, 1, 8000)
	if err != nil {
		t.Fatalf("Synthesize(0) error = %v", err)
	}
	if buf.Peak() != 0 {
		t.Errorf("Peak() = %v, want 0", buf.Peak())
	}
}

func TestSynthesize_InvalidParams(t *testing.T) {
	t.Parallel()

	s := New()
	tests := []struct {
		name string
		freq float64
		dur  float64
		rate int
	}{
		{"negative frequency", -1, 1, 8000},
		{"zero duration", 440, 0, 8000},
		{"zero rate", 440, 1, 0},
		{"nan frequency", math.NaN(), 1, 8000},
	}

	for _, tt := range tests {
		if _, err := s.Synthesize(tt.freq, tt.dur, tt.rate); !errors.Is(err, ErrInvalidParams) {
			t.Errorf("%s: error = %v, want ErrInvalidParams", tt.name, err)
		}
	}
}

func TestSynthesize_InvalidPartial(t *testing.T) {
	t.Parallel()

	s := New()
	s.Partials = []Partial{{Ratio: 1, Amplitude: 2}}

	if _, err := s.Synthesize(440, 0.1, 8000); !errors.Is(err, ErrInvalidPartial) {
		t.Errorf("error = %v, want ErrInvalidPartial", err)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	t.Parallel()

	s := New()
	var (
		wg      sync.WaitGroup
		results [4][]float64
	)

	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf, err := s.Synthesize(523.25, 0.6, 8000)
			if err != nil {
				t.Errorf("Synthesize() error = %v", err)
				return
			}
			results[i] = buf.Samples
		}()
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if !slices.Equal(results[0], results[i]) {
			t.Errorf("run %d differs from run 0", i)
		}
	}
}

func BenchmarkSynthesize_OneSecond(b *testing.B) {
	s := New()

	b.ReportAllocs()

	for b.Loop() {
		_, _ = s.Synthesize(440, 1, 44100)
	}
}
