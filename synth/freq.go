// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// NumPitches is the number of distinct pitches the synthesizer can
// voice. Pitch values are indices in [0, NumPitches).
const NumPitches = 128

// FrequencyTable maps a pitch index to its fundamental frequency in Hz.
// It is built once at construction and immutable afterwards.
type FrequencyTable [NumPitches]float64

// NewFrequencyTable builds the equal-temperament pitch table:
//
//	frequency(p) = 13.75 * 2^((p-9)/12)
//
// which places pitch 69 at 440 Hz (concert A) and pitch 9 at 13.75 Hz.
func NewFrequencyTable() *FrequencyTable {
	var t FrequencyTable
	for i := range t {
		t[i] = 13.75 * math.Pow(2, (float64(i)-9)/12)
	}
	return &t
}

// Frequency returns the fundamental frequency of pitch in Hz.
// pitch must be in [0, NumPitches).
func (t *FrequencyTable) Frequency(pitch byte) float64 {
	return t[pitch]
}
