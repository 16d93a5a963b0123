// SPDX-License-Identifier: EPL-2.0

// Package pitch maps piano keyboard indices to frequencies and names.
//
// Indices follow MIDI numbering. The supported range is C1 (24) to C7 (96):
//
//	n, _ := pitch.New(61)
//	fmt.Println(n.Label(), n.FileStem) // C#4 Cs4
//
// Frequencies are twelve-tone equal temperament with A4 (69) at 440 Hz.
package pitch
