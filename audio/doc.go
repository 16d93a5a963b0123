// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample-level types shared by the synthesizer,
// the encoders and the decoders.
//
//   - Buffer is a rendered mono signal at a known sample rate
//   - Normalize scales a Buffer so its peak sits at a fixed headroom
//   - Format describes a PCM layout (rate, bit depth, channels)
//   - Source is a decoded stream and MonoMixer downmixes one
//   - Registry maps file extensions to decoders
//
// # Normalization
//
//	buf := audio.Normalize(raw, audio.DefaultHeadroom)
//
// The loudest sample of buf is 0.9 in magnitude. A silent buffer is
// returned as an unchanged copy. The input is never modified.
//
// # Sources
//
// Decoders in the formats packages return a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    Close() error
//	}
//
// ReadSamples counts interleaved values, not frames. MonoMixer averages
// the channels of a Source so callers can treat every file as mono:
//
//	mono := audio.NewMonoMixer(src)
//	samples, err := audio.ReadAll(mono)
//
// # Sample Format
//
// Samples are float64 in [-1.0, 1.0]. Encoders clamp anything outside
// that range before quantizing.
package audio
