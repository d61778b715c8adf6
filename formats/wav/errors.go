// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrOnlyMonoSupported = errors.New("only mono sources supported")
)
