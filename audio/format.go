// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Format describes the PCM layout of an encoded stream.
type Format struct {
	SampleRate int
	BitDepth   int
	Channels   int
}

// Validate reports ErrInvalidFormat unless every field is positive, the
// bit depth is a whole number of bytes between 8 and 32, and the sample and
// byte rates fit the 32-bit header fields.
func (f Format) Validate() error {
	switch {
	case f.SampleRate <= 0 || uint64(f.SampleRate) > math.MaxUint32:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, f.SampleRate)
	case f.Channels <= 0 || f.Channels > 0xFFFF:
		return fmt.Errorf("%w: channels %d", ErrInvalidFormat, f.Channels)
	case f.BitDepth <= 0 || f.BitDepth%8 != 0 || f.BitDepth > 32:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidFormat, f.BitDepth)
	case uint64(f.SampleRate)*uint64(f.BlockAlign()) > math.MaxUint32:
		return fmt.Errorf("%w: byte rate %d", ErrInvalidFormat, uint64(f.SampleRate)*uint64(f.BlockAlign()))
	}

	return nil
}

func (f Format) BytesPerSample() int { return f.BitDepth / 8 }

// BlockAlign is the size of one frame (all channels) in bytes.
func (f Format) BlockAlign() int { return f.Channels * f.BytesPerSample() }

func (f Format) ByteRate() int { return f.SampleRate * f.BlockAlign() }

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d-bit, %d ch", f.SampleRate, f.BitDepth, f.Channels)
}
