// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only integer PCM supported")
	ErrUnsupportedBitDepth  = errors.New("unsupported PCM bit depth")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrDataTooLarge         = errors.New("PCM data too large for a RIFF container")
)
