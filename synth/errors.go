// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidParams  = errors.New("invalid synthesis parameters")
	ErrInvalidPartial = errors.New("invalid harmonic partial")
)
