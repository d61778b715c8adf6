// SPDX-License-Identifier: EPL-2.0

package score

import "errors"

var (
	ErrPitchOutOfRange   = errors.New("pitch must be below 128")
	ErrInvalidNoteTiming = errors.New("note start must be non-negative and duration positive")
)
