// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// MaxPCM returns the largest positive integer value used for a signed
// sample of bitDepth bits (2^(bitDepth-1) - 1).
func MaxPCM(bitDepth int) int32 {
	return int32(uint32(1)<<(bitDepth-1) - 1)
}

// FloatToPCM clamps x to [-1, 1] and scales it to the signed integer range of
// bitDepth, rounding half away from zero. bitDepth must be in 1..32.
func FloatToPCM(x float64, bitDepth int) int32 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int32(math.Round(x * float64(MaxPCM(bitDepth))))
}

// PCMToFloat is the inverse of FloatToPCM, up to one quantization step.
func PCMToFloat(v int32, bitDepth int) float64 {
	return float64(v) / float64(MaxPCM(bitDepth))
}
