// SPDX-License-Identifier: EPL-2.0

package audio

// DefaultHeadroom leaves a 10% margin below full scale.
const DefaultHeadroom = 0.9

// Normalize returns a new buffer scaled so that its peak equals headroom.
// A silent buffer comes back unchanged (as a copy).
func Normalize(buf Buffer, headroom float64) Buffer {
	peak := buf.Peak()
	if peak == 0 {
		return buf.Clone()
	}

	out := buf
	out.Samples = make([]float64, len(buf.Samples))

	gain := headroom / peak
	for i, s := range buf.Samples {
		out.Samples[i] = s * gain
	}

	return out
}
