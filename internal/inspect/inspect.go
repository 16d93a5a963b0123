// SPDX-License-Identifier: EPL-2.0

// Package inspect decodes audio files and summarizes their contents.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/pianogen/audio"
	"github.com/ik5/pianogen/formats/aiff"
	"github.com/ik5/pianogen/formats/mp3"
	"github.com/ik5/pianogen/formats/vorbis"
	"github.com/ik5/pianogen/formats/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// NewRegistry returns a registry with every decoder in formats/ registered
// under its file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// Report summarizes one decoded file.
type Report struct {
	Path       string
	SampleRate int
	Channels   int
	Frames     int
	Duration   time.Duration
	Peak       float64 // of the mono mix, 0..1
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %d Hz, %d ch, %d frames (%s), peak %.3f (%.1f dBFS)",
		r.Path, r.SampleRate, r.Channels, r.Frames, r.Duration, r.Peak, dBFS(r.Peak))
}

func dBFS(peak float64) float64 {
	if peak <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(peak)
}

// File decodes path with the decoder registered for its extension.
func File(path string, reg *audio.Registry) (Report, error) {
	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return Report{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return Report{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	rep, err := Source(src)
	if err != nil {
		return Report{}, fmt.Errorf("reading %s: %w", path, err)
	}
	rep.Path = path

	return rep, nil
}

// Source drains src through a MonoMixer and closes it.
func Source(src audio.Source) (Report, error) {
	rep := Report{
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
	}

	mono := audio.NewMonoMixer(src)
	defer mono.Close()

	buf := make([]float64, 4096)
	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			rep.Peak = max(rep.Peak, math.Abs(v))
		}
		rep.Frames += n

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return Report{}, err
		}
	}

	if rep.SampleRate > 0 {
		rep.Duration = time.Duration(float64(rep.Frames) / float64(rep.SampleRate) * float64(time.Second))
	}

	return rep, nil
}
