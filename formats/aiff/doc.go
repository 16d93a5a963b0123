// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. Integer
// PCM of 8, 16, 24 and 32 bits is supported; samples are scaled to [-1, 1]
// the same way the wav package scales them, so peak readings agree across
// formats.
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory.
package aiff
