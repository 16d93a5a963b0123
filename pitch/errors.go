// SPDX-License-Identifier: EPL-2.0

package pitch

import "errors"

var (
	ErrOutOfRange = errors.New("note index out of supported range")
	ErrEmptyRange = errors.New("empty note range")
)
