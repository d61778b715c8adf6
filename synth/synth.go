// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Config holds the envelope shape and output gain shared by every
// voice. Attack, Decay and Release are stage lengths in samples;
// Sustain is the fraction of the velocity amplitude held while a key
// stays down.
type Config struct {
	Attack  int
	Decay   int
	Sustain float64
	Release int

	// MasterGain scales each voice's contribution. One voice never
	// exceeds [-MasterGain, +MasterGain]; simultaneous voices sum.
	MasterGain float64

	// RetriggerFromZero restarts a retriggered voice's attack at
	// amplitude zero instead of its current amplitude. The default
	// (false) seeds the attack from the current amplitude, which keeps
	// the signal free of clicks when a sounding pitch is struck again.
	RetriggerFromZero bool
}

// DefaultConfig returns the configuration profile of the reference
// instrument: ~42ms attack and ~104ms decay at 48kHz, 60% sustain,
// ~208ms release, conservative output gain.
func DefaultConfig() Config {
	return Config{
		Attack:     2000,
		Decay:      5000,
		Sustain:    0.6,
		Release:    10000,
		MasterGain: 0.2,
	}
}

func (cfg *Config) validate() error {
	if cfg.Attack <= 0 || cfg.Decay <= 0 || cfg.Release <= 0 {
		return ErrInvalidEnvelope
	}
	if cfg.Sustain <= 0 || cfg.Sustain > 1 {
		return ErrInvalidEnvelope
	}
	if cfg.MasterGain <= 0 {
		return ErrInvalidGain
	}
	return nil
}

// Synthesizer turns note-on/note-off events into a mono audio signal:
// one sine partial per pitch, shaped by an ADSR envelope.
//
// The voice pool is a fixed array indexed by pitch, sized once at
// construction. ProcessBlock neither allocates nor locks; the caller
// is expected to invoke it from a single goroutine, once per audio
// block, which is the only serialization the state needs.
type Synthesizer struct {
	cfg        Config
	sampleRate int
	timeStep   float64
	voices     [NumPitches]voice
}

// New builds a synthesizer for the given output sample rate. All
// voices start silent.
func New(sampleRate int, cfg Config) (*Synthesizer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Synthesizer{
		cfg:        cfg,
		sampleRate: sampleRate,
		timeStep:   1 / float64(sampleRate),
	}

	freqs := NewFrequencyTable()
	for i := range s.voices {
		s.voices[i].frequency = freqs[i]
		s.voices[i].pending = noPendingStart
	}

	return s, nil
}

// SampleRate returns the output rate in Hz.
func (s *Synthesizer) SampleRate() int { return s.sampleRate }

// Config returns the envelope and gain configuration.
func (s *Synthesizer) Config() Config { return s.cfg }

// ActiveVoices counts the voices currently sounding or scheduled to
// start. Zero means the synthesizer is emitting pure silence.
func (s *Synthesizer) ActiveVoices() int {
	n := 0
	for i := range s.voices {
		if !s.voices[i].idle() {
			n++
		}
	}
	return n
}

// ProcessBlock renders one block of len(out) mono samples into out.
//
// All events are applied in arrival order before the first frame is
// rendered: note-offs take effect immediately, note-ons are scheduled
// at their frame offset inside this block. Each frame then sums the
// active voices and advances their per-sample state.
func (s *Synthesizer) ProcessBlock(events []Event, out []float32) {
	for _, ev := range events {
		s.applyEvent(ev, len(out))
	}

	for f := range out {
		out[f] = s.renderFrame(f)
	}
}

// renderFrame produces the output value for frame f and steps every
// sounding voice forward one sample. Idle voices are skipped without
// touching their state, bounding the cost to the active voice count.
func (s *Synthesizer) renderFrame(f int) float32 {
	var sum float64

	for i := range s.voices {
		v := &s.voices[i]
		if v.idle() {
			continue
		}

		if v.pending != noPendingStart {
			if v.pending != f {
				// Scheduled but not due yet: silent, state frozen.
				continue
			}
			s.activate(v)
		}

		phase := v.frequency * float64(v.elapsed) * s.timeStep * 2 * math.Pi
		sum += s.cfg.MasterGain * v.env.amplitude(&s.cfg) * math.Sin(phase)

		v.elapsed++
		v.env.advance(&s.cfg)
	}

	return float32(sum)
}

// activate begins the attack of a scheduled note-on: the oscillator
// phase restarts and the envelope ramps from the amplitude the voice
// held at this instant (zero for a silent voice, or unconditionally
// zero under the RetriggerFromZero policy) towards full velocity
// amplitude.
func (s *Synthesizer) activate(v *voice) {
	start := 0.0
	if !s.cfg.RetriggerFromZero {
		start = v.env.amplitude(&s.cfg)
	}

	v.env.triggerAttack(start, v.velocityFraction())
	v.elapsed = 0
	v.pending = noPendingStart
}
