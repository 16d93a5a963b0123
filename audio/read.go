// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src and returns every interleaved sample it produced.
func ReadAll(src Source) ([]float64, error) {
	chunk := make([]float64, 4096*max(src.Channels(), 1))
	var out []float64

	for {
		n, err := src.ReadSamples(chunk)
		out = append(out, chunk[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			return out, nil
		}
	}
}
