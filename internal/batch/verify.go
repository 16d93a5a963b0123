// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/wav"

	"github.com/ik5/pianogen"
	"github.com/ik5/pianogen/audio"
	"github.com/ik5/pianogen/utils"
)

// VerifyFile decodes path with go-audio/wav, which shares no code with our
// encoder, and checks it against the format, length and peak that params
// produce.
func VerifyFile(path string, params pianogen.Params) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	if want := int64(params.EncodedSize()); info.Size() != want {
		return fmt.Errorf("%w: %s is %d bytes, want %d", ErrVerifyFailed, path, info.Size(), want)
	}

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return fmt.Errorf("%w: %s is not a valid wav file", ErrVerifyFailed, path)
	}

	got := audio.Format{
		SampleRate: int(d.SampleRate),
		BitDepth:   int(d.BitDepth),
		Channels:   int(d.NumChans),
	}
	if got != params.Format {
		return fmt.Errorf("%w: %s has format %s, want %s", ErrVerifyFailed, path, got, params.Format)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}

	frames := audio.FrameCount(params.Format.SampleRate, params.Duration)
	if buf.NumFrames() != frames {
		return fmt.Errorf("%w: %s has %d frames, want %d", ErrVerifyFailed, path, buf.NumFrames(), frames)
	}

	// 8-bit data comes back unsigned, so the peak check only covers signed depths.
	if params.Format.BitDepth == 8 {
		return nil
	}

	peak := 0
	for _, v := range buf.Data {
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}

	want := int(math.Round(params.Headroom * float64(utils.MaxPCM(params.Format.BitDepth))))
	if peak != want {
		return fmt.Errorf("%w: %s peaks at %d, want %d", ErrVerifyFailed, path, peak, want)
	}

	return nil
}
