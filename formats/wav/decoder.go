// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/pianogen/audio"
	"github.com/ik5/pianogen/utils"
)

// Header is what ReadHeader learns about a WAV stream before its samples.
type Header struct {
	Format   audio.Format
	RIFFSize uint32
	DataSize uint32
}

// Frames is the number of whole frames in the data chunk.
func (h Header) Frames() int {
	return int(h.DataSize) / h.Format.BlockAlign()
}

// ReadHeader consumes r up to the first byte of sample data. Chunks other
// than "fmt " and "data" are skipped.
func ReadHeader(r io.Reader) (Header, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return Header{}, fmt.Errorf("%w", err)
	}

	if !bytes.Equal(riff[:4], []byte("RIFF")) || !bytes.Equal(riff[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}

	h := Header{RIFFSize: binary.LittleEndian.Uint32(riff[4:8])}
	haveFmt := false

	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return Header{}, ErrUnsupportedWavChunks
			}
			return Header{}, fmt.Errorf("%w", err)
		}

		id := string(chunk[:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])

		switch id {
		case "fmt ":
			if size < fmtChunkSize {
				return Header{}, ErrUnsupportedWavLayout
			}
			// Only the first 16 bytes matter; extension fields are skipped.
			var body [fmtChunkSize]byte
			if _, err := io.ReadFull(r, body[:]); err != nil {
				return Header{}, fmt.Errorf("reading fmt chunk: %w", err)
			}
			rest := int64(size) - fmtChunkSize + int64(size&1)
			if _, err := io.CopyN(io.Discard, r, rest); err != nil {
				return Header{}, fmt.Errorf("skipping fmt extension: %w", err)
			}
			format, err := parseFmt(body[:])
			if err != nil {
				return Header{}, err
			}
			h.Format = format
			haveFmt = true

		case "data":
			if !haveFmt {
				return Header{}, ErrUnsupportedWavLayout
			}
			h.DataSize = size
			return h, nil

		default:
			if _, err := io.CopyN(io.Discard, r, int64(size)+int64(size&1)); err != nil {
				return Header{}, fmt.Errorf("skipping %q chunk: %w", id, err)
			}
		}
	}
}

func parseFmt(body []byte) (audio.Format, error) {
	audioFormat := binary.LittleEndian.Uint16(body[0:2])
	f := audio.Format{
		Channels:   int(binary.LittleEndian.Uint16(body[2:4])),
		SampleRate: int(binary.LittleEndian.Uint32(body[4:8])),
		BitDepth:   int(binary.LittleEndian.Uint16(body[14:16])),
	}

	if audioFormat != formatPCM {
		return audio.Format{}, ErrOnlyPCMSupported
	}
	switch f.BitDepth {
	case 8, 16, 24, 32:
	default:
		return audio.Format{}, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, f.BitDepth)
	}
	if err := f.Validate(); err != nil {
		return audio.Format{}, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	return f, nil
}

type wavSource struct {
	r      io.Reader
	header Header
	buf    []byte
}

func (s *wavSource) SampleRate() int { return s.header.Format.SampleRate }
func (s *wavSource) Channels() int   { return s.header.Format.Channels }
func (s *wavSource) Close() error    { return nil }

// Header returns the parsed header of the stream.
func (s *wavSource) Header() Header { return s.header }

func (s *wavSource) ReadSamples(dst []float64) (int, error) {
	bps := s.header.Format.BytesPerSample()
	bits := s.header.Format.BitDepth

	need := len(dst) * bps
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / bps
	for i := range samples {
		dst[i] = utils.PCMToFloat(sampleAt(s.buf[i*bps:], bps), bits)
	}

	if samples == 0 && err != nil {
		return 0, io.EOF
	}

	return samples, nil
}

// sampleAt reads one little-endian sample of bps bytes.
func sampleAt(b []byte, bps int) int32 {
	switch bps {
	case 1:
		return int32(b[0]) - 128
	case 2:
		return int32(int16(binary.LittleEndian.Uint16(b)))
	case 3:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		return v << 8 >> 8 // sign extend
	default:
		return int32(binary.LittleEndian.Uint32(b))
	}
}

// Decoder reads integer PCM WAV streams of 8, 16, 24 or 32 bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	return &wavSource{
		r:      io.LimitReader(r, int64(h.DataSize)),
		header: h,
		buf:    make([]byte, 4096),
	}, nil
}

// DecodeBuffer reads a whole WAV stream into a mono buffer, averaging
// channels when there is more than one.
func DecodeBuffer(r io.Reader) (audio.Buffer, Header, error) {
	src, err := Decoder{}.Decode(r)
	if err != nil {
		return audio.Buffer{}, Header{}, err
	}
	h := src.(*wavSource).Header()

	if h.Format.Channels > 1 {
		src = audio.NewMonoMixer(src)
	}

	samples, err := audio.ReadAll(src)
	if err != nil {
		return audio.Buffer{}, h, err
	}

	return audio.Buffer{
		Samples:    samples,
		SampleRate: h.Format.SampleRate,
		Duration:   float64(len(samples)) / float64(h.Format.SampleRate),
	}, h, nil
}
