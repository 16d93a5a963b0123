// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/pianogen/audio"
	"github.com/ik5/pianogen/utils"
)

// HeaderSize is the size of the canonical RIFF/WAVE header written by Encode.
const HeaderSize = 44

const (
	fmtChunkSize = 16
	formatPCM    = 1
)

// DataSize returns the size in bytes of the data chunk holding frames frames.
func DataSize(frames int, f audio.Format) (int, error) {
	size := uint64(frames) * uint64(f.BlockAlign())
	if size > math.MaxUint32-(HeaderSize-8) {
		return 0, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, size)
	}

	return int(size), nil
}

// putHeader writes the 44-byte header for a data chunk of dataSize bytes.
func putHeader(header []byte, f audio.Format, dataSize uint32) {
	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], HeaderSize-8+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitDepth))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)
}

// putSample writes one quantized sample. 8-bit WAV data is unsigned.
func putSample(dst []byte, v int32, bytesPerSample int) {
	switch bytesPerSample {
	case 1:
		dst[0] = byte(v + 128)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
	case 3:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	}
}

// putFrames quantizes samples into dst, repeating each mono sample on every channel.
func putFrames(dst []byte, samples []float64, f audio.Format) {
	bps := f.BytesPerSample()
	off := 0
	for _, s := range samples {
		v := utils.FloatToPCM(s, f.BitDepth)
		for range f.Channels {
			putSample(dst[off:off+bps], v, bps)
			off += bps
		}
	}
}

// Encode serializes buf as a complete PCM WAV file in format f. Samples are
// clamped to [-1, 1]. The sample rate written is f.SampleRate.
func Encode(buf audio.Buffer, f audio.Format) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}

	dataSize, err := DataSize(len(buf.Samples), f)
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+dataSize)
	putHeader(out[:HeaderSize], f, uint32(dataSize))
	putFrames(out[HeaderSize:], buf.Samples, f)

	return out, nil
}

// Write streams the same bytes as Encode to w without holding the whole
// payload in memory.
func Write(w io.Writer, buf audio.Buffer, f audio.Format) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	dataSize, err := DataSize(len(buf.Samples), f)
	if err != nil {
		return err
	}

	header := make([]byte, HeaderSize)
	putHeader(header, f, uint32(dataSize))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	// Write 8192 frames at a time
	const chunkFrames = 8192
	if len(buf.Samples) == 0 {
		return nil
	}

	chunk := make([]byte, min(len(buf.Samples), chunkFrames)*f.BlockAlign())
	for i := 0; i < len(buf.Samples); i += chunkFrames {
		end := min(i+chunkFrames, len(buf.Samples))
		b := chunk[:(end-i)*f.BlockAlign()]
		putFrames(b, buf.Samples[i:end], f)

		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}
