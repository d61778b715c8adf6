// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidEnvelope   = errors.New("envelope stage lengths must be positive and sustain in (0,1]")
	ErrInvalidGain       = errors.New("master gain must be positive")
)
