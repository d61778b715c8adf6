// SPDX-License-Identifier: EPL-2.0

package synth

// envStage tags the phase an envelope is currently in.
type envStage uint8

const (
	stageOff envStage = iota
	stageAttack
	stageDecay
	stageSustain
	stageRelease
)

// envelope is the per-voice ADSR state machine.
//
// The stage tag carries phase-local state in t, from and to: t counts
// samples spent inside the current ramp, from and to are the ramp's
// endpoint amplitudes. They are written only when a stage is entered,
// so reading the amplitude is a pure function of the current state.
// For stageSustain the level is held in to; stageOff carries nothing.
type envelope struct {
	stage envStage
	t     int
	from  float64
	to    float64
}

// amplitude returns the envelope output for the current sample.
// It performs no state changes; advance moves the machine forward.
func (e *envelope) amplitude(cfg *Config) float64 {
	switch e.stage {
	case stageAttack:
		return e.from + (e.to-e.from)*float64(e.t)/float64(cfg.Attack)
	case stageDecay:
		return e.from + (e.to-e.from)*float64(e.t)/float64(cfg.Decay)
	case stageSustain:
		return e.to
	case stageRelease:
		return e.from - e.from*float64(e.t)/float64(cfg.Release)
	default: // stageOff
		return 0
	}
}

// advance moves the state machine forward by one sample. It must run
// after the sample's amplitude has been read, so a ramp's final value
// is produced by the first sample of the following stage.
func (e *envelope) advance(cfg *Config) {
	switch e.stage {
	case stageAttack:
		e.t++
		if e.t == cfg.Attack {
			// Decay ramps from full velocity amplitude down to the
			// velocity-scaled sustain level.
			peak := e.to
			e.stage = stageDecay
			e.t = 0
			e.from = peak
			e.to = peak * cfg.Sustain
		}
	case stageDecay:
		e.t++
		if e.t == cfg.Decay {
			level := e.to
			e.stage = stageSustain
			e.t = 0
			e.from = level
			e.to = level
		}
	case stageRelease:
		e.t++
		if e.t == cfg.Release {
			*e = envelope{}
		}
	}
	// stageSustain and stageOff only move on an external trigger.
}

// triggerAttack starts a new attack ramp from start towards target.
// start is the amplitude the voice held at the instant of activation,
// which keeps a retriggered voice free of discontinuities.
func (e *envelope) triggerAttack(start, target float64) {
	e.stage = stageAttack
	e.t = 0
	e.from = start
	e.to = target
}

// triggerRelease forces the envelope into the release ramp from its
// current amplitude, regardless of the prior stage.
func (e *envelope) triggerRelease(cfg *Config) {
	current := e.amplitude(cfg)
	e.stage = stageRelease
	e.t = 0
	e.from = current
	e.to = 0
}
