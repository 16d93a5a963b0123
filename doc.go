// SPDX-License-Identifier: EPL-2.0

// Package pianogen renders piano notes to WAV files.
//
// Each note is built by additive synthesis: eight partials, each with its
// own decay and a small inharmonic stretch, summed and shaped by a four
// phase envelope, peak normalized to 90% of full scale and written as
// 16-bit mono PCM at 44.1 kHz.
//
// # Quick Start
//
// The simplest way to render one note:
//
//	data, err := pianogen.RenderIndex(69) // A4
//	os.WriteFile("A4.wav", data, 0o644)
//
// # Pipeline
//
// The stages live in their own packages and can be used on their own:
//
//	n, _ := pitch.New(61)                          // C#4, 277.18 Hz
//	raw, _ := synth.New().Synthesize(n.Frequency, 4, 44100)
//	buf := audio.Normalize(raw, audio.DefaultHeadroom)
//	data, _ := wav.Encode(buf, audio.Format{SampleRate: 44100, BitDepth: 16, Channels: 1})
//
// Nothing in the pipeline touches the filesystem. The batch job that writes
// the whole C1..C7 set is the pianogen command.
//
// # Decoding
//
// The formats subpackages decode wav, aiff, mp3 and ogg files into an
// audio.Source, which the pianogen inspect command uses to check assets.
package pianogen
