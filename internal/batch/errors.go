// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	ErrVerifyFailed = errors.New("written file does not match the rendered format")
)
