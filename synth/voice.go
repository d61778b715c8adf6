// SPDX-License-Identifier: EPL-2.0

package synth

// noPendingStart marks a voice with no scheduled note-on.
const noPendingStart = -1

// voice holds the synthesis state of one pitch: a fixed fundamental
// frequency, the velocity of the most recent note-on, the sample
// counter driving the oscillator phase, and the amplitude envelope.
//
// Voices are created once at synthesizer construction, one per pitch,
// and are never allocated or freed afterwards. A finished voice is
// reset in place, not removed.
type voice struct {
	frequency float64
	velocity  byte
	elapsed   int // samples since the current sounding episode's attack began
	pending   int // frame offset of a scheduled note-on, noPendingStart if none
	env       envelope
}

// idle reports whether the voice contributes nothing to output and
// needs no per-sample bookkeeping.
func (v *voice) idle() bool {
	return v.env.stage == stageOff && v.pending == noPendingStart
}

// velocityFraction scales the 0..127 velocity into a 0..1 amplitude.
func (v *voice) velocityFraction() float64 {
	return float64(v.velocity) / 127
}
