// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// go-mp3 always outputs 16-bit stereo, so the returned audio.Source reports
// two channels; wrap it in audio.NewMonoMixer to get one.
//
// MP3 writing is not supported.
package mp3
