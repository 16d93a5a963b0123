// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing. Like the
// real reader it returns interleaved values, always whole frames.
type mockOggVorbisReader struct {
	sampleRate   int
	channels     int
	samples      []float32
	offset       int
	returnErrors bool
}

func (m *mockOggVorbisReader) SampleRate() int {
	return m.sampleRate
}

func (m *mockOggVorbisReader) Channels() int {
	return m.channels
}

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	frames := min(len(buf), len(m.samples)-m.offset) / m.channels
	n := copy(buf, m.samples[m.offset:m.offset+frames*m.channels])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_ReadSamples_Stereo(t *testing.T) {
	t.Parallel()

	mock := &mockOggVorbisReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0.5, -0.5, 0.25, -0.25, 1, -1},
	}
	src := newSource(mock)

	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Errorf("metadata = %d Hz / %d ch, want 48000 / 2", src.SampleRate(), src.Channels())
	}

	// Room for two frames and a half; only whole frames are read.
	buf := make([]float64, 5)
	n, err := src.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float64{0.5, -0.5, 0.25, -0.25}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	mock := &mockOggVorbisReader{sampleRate: 8000, channels: 1, samples: []float32{0.1, 0.2}}
	src := newSource(mock)

	buf := make([]float64, 10)
	n, err := src.ReadSamples(buf)
	if n != 2 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v; want 2, nil", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{channels: 1, returnErrors: true})

	_, err := src.ReadSamples(make([]float64, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{channels: 2, samples: []float32{1, 1}})

	n, err := src.ReadSamples(make([]float64, 1))
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(len 1) = %d, %v; want 0, nil", n, err)
	}
}
