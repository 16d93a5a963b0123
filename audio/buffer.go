// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Buffer is an owned block of mono samples.
// len(Samples) == FrameCount(SampleRate, Duration).
type Buffer struct {
	Samples    []float64
	SampleRate int
	Duration   float64 // seconds
}

// FrameCount returns round(duration * sampleRate).
func FrameCount(sampleRate int, duration float64) int {
	return int(math.Round(duration * float64(sampleRate)))
}

// NewBuffer allocates a silent buffer for duration seconds at sampleRate.
func NewBuffer(sampleRate int, duration float64) Buffer {
	return Buffer{
		Samples:    make([]float64, FrameCount(sampleRate, duration)),
		SampleRate: sampleRate,
		Duration:   duration,
	}
}

func (b Buffer) Len() int { return len(b.Samples) }

// Clone returns a deep copy that shares no memory with b.
func (b Buffer) Clone() Buffer {
	c := b
	c.Samples = make([]float64, len(b.Samples))
	copy(c.Samples, b.Samples)

	return c
}

// Peak returns max(|sample|), or 0 for an empty buffer.
func (b Buffer) Peak() float64 {
	peak := 0.0
	for _, s := range b.Samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}

	return peak
}
