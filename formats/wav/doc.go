// SPDX-License-Identifier: EPL-2.0

// Package wav encodes and decodes uncompressed PCM WAV files.
//
// # Encoding
//
// Encode turns a mono audio.Buffer into a complete file in any integer PCM
// format (8, 16, 24 or 32 bits, any channel count, any sample rate):
//
//	f := audio.Format{SampleRate: 44100, BitDepth: 16, Channels: 1}
//	data, err := wav.Encode(buf, f)
//
// Write produces the same bytes on an io.Writer in 8192-frame chunks.
//
// Samples are clamped to [-1, 1] and scaled by 2^(bits-1)-1 with rounding.
// 8-bit data is stored unsigned, as the format requires.
//
// # File Format
//
// The encoder always writes the canonical 44-byte header:
//   - RIFF header (12 bytes): "RIFF", file size - 8, "WAVE"
//   - fmt chunk (24 bytes): PCM tag, channels, sample rate, byte rate, block align, bit depth
//   - data chunk header (8 bytes): "data", payload size
//
// Every size field matches the payload exactly.
//
// # Decoding
//
// Decoder walks the chunk list, skipping anything other than "fmt " and
// "data", and returns an audio.Source. DecodeBuffer reads a whole file into
// a mono buffer:
//
//	buf, header, err := wav.DecodeBuffer(file)
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrOnlyPCMSupported: compressed or float formats
//   - ErrUnsupportedBitDepth: bit depths other than 8, 16, 24, 32
//   - ErrUnsupportedWavLayout: malformed or misplaced fmt chunk
//   - ErrUnsupportedWavChunks: no data chunk found
//   - ErrDataTooLarge: payload does not fit the 32-bit size fields
package wav
