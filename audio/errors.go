// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBlockSize   = errors.New("block size must be positive")
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrNoSources          = errors.New("mixer needs at least one source")
	ErrNotMono            = errors.New("source must be mono")
	ErrSampleRateMismatch = errors.New("sources must share one sample rate")
)
