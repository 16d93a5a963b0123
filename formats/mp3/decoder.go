// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/pianogen/audio"
)

// go-mp3 always produces 16-bit little-endian stereo PCM.
const (
	channels       = 2
	bytesPerSample = 2
	fullScale      = 32768.0
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  mp3Reader
	buf  []byte
	tail []byte // bytes of an incomplete frame carried to the next read
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float64) (int, error) {
	// Whole frames only
	want := (len(dst) / channels) * channels
	if want == 0 {
		return 0, nil
	}

	need := want * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	held := copy(s.buf, s.tail)
	s.tail = s.tail[:0]

	n, err := s.dec.Read(s.buf[held:])
	n += held

	usable := n - n%(channels*bytesPerSample)
	s.tail = append(s.tail, s.buf[usable:n]...)

	samples := usable / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = float64(v) / fullScale
	}

	if samples == 0 && err == nil {
		return 0, nil
	}
	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}

	return samples, err
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec: dec,
		buf: make([]byte, 8192),
	}
}
