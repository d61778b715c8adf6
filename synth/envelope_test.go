// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"
)

func testEnvConfig() Config {
	return Config{
		Attack:     100,
		Decay:      200,
		Sustain:    0.6,
		Release:    400,
		MasterGain: 0.5,
	}
}

// stepEnv reads one amplitude and advances the machine, mirroring the
// per-sample order of the render loop.
func stepEnv(e *envelope, cfg *Config) float64 {
	amp := e.amplitude(cfg)
	e.advance(cfg)
	return amp
}

func TestEnvelope_AttackRampIsLinear(t *testing.T) {
	t.Parallel()

	cfg := testEnvConfig()
	var e envelope
	e.triggerAttack(0, 1)

	for i := 0; i < cfg.Attack; i++ {
		want := float64(i) / float64(cfg.Attack)
		got := stepEnv(&e, &cfg)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("attack amplitude at sample %d = %v, want %v", i, got, want)
		}
	}

	if e.stage != stageDecay {
		t.Errorf("stage after %d attack samples = %v, want stageDecay", cfg.Attack, e.stage)
	}
}

func TestEnvelope_DecayReachesSustain(t *testing.T) {
	t.Parallel()

	cfg := testEnvConfig()
	var e envelope
	e.triggerAttack(0, 1)

	for i := 0; i < cfg.Attack+cfg.Decay; i++ {
		stepEnv(&e, &cfg)
	}

	if e.stage != stageSustain {
		t.Fatalf("stage after attack+decay = %v, want stageSustain", e.stage)
	}

	got := e.amplitude(&cfg)
	if math.Abs(got-cfg.Sustain) > 1e-12 {
		t.Errorf("sustain amplitude = %v, want %v", got, cfg.Sustain)
	}

	// Sustain holds indefinitely without an external trigger.
	for i := 0; i < 1000; i++ {
		stepEnv(&e, &cfg)
	}
	if e.stage != stageSustain {
		t.Errorf("stage after idling in sustain = %v, want stageSustain", e.stage)
	}
}

func TestEnvelope_VelocityScalesTargets(t *testing.T) {
	t.Parallel()

	cfg := testEnvConfig()
	var e envelope
	e.triggerAttack(0, 0.5) // velocity 63.5/127

	for i := 0; i < cfg.Attack+cfg.Decay; i++ {
		stepEnv(&e, &cfg)
	}

	want := 0.5 * cfg.Sustain
	if got := e.amplitude(&cfg); math.Abs(got-want) > 1e-12 {
		t.Errorf("velocity-scaled sustain = %v, want %v", got, want)
	}
}

func TestEnvelope_ReleaseEndsExactlyOnTime(t *testing.T) {
	t.Parallel()

	cfg := testEnvConfig()
	e := envelope{stage: stageSustain, to: cfg.Sustain}
	e.triggerRelease(&cfg)

	// Every release sample must still be audible and the ramp must
	// shrink by a constant step.
	step := cfg.Sustain / float64(cfg.Release)
	prev := math.Inf(1)
	for i := 0; i < cfg.Release; i++ {
		amp := stepEnv(&e, &cfg)
		if amp <= 0 && i < cfg.Release-1 {
			t.Fatalf("release amplitude at sample %d = %v, reached zero early", i, amp)
		}
		if prev != math.Inf(1) && math.Abs((prev-amp)-step) > 1e-12 {
			t.Fatalf("release step at sample %d = %v, want %v", i, prev-amp, step)
		}
		prev = amp
	}

	if e.stage != stageOff {
		t.Errorf("stage after %d release samples = %v, want stageOff", cfg.Release, e.stage)
	}
	if got := e.amplitude(&cfg); got != 0 {
		t.Errorf("amplitude after release = %v, want 0", got)
	}
}

func TestEnvelope_ReleaseFromMidAttack(t *testing.T) {
	t.Parallel()

	cfg := testEnvConfig()
	var e envelope
	e.triggerAttack(0, 1)

	for i := 0; i < cfg.Attack/2; i++ {
		stepEnv(&e, &cfg)
	}
	held := e.amplitude(&cfg)
	e.triggerRelease(&cfg)

	if e.stage != stageRelease {
		t.Fatalf("stage after release trigger = %v, want stageRelease", e.stage)
	}
	if got := e.amplitude(&cfg); got != held {
		t.Errorf("release start amplitude = %v, want %v (amplitude at trigger)", got, held)
	}
}

func TestEnvelope_RetriggerStartsFromCurrentAmplitude(t *testing.T) {
	t.Parallel()

	cfg := testEnvConfig()
	var e envelope
	e.triggerAttack(0, 1)

	// Run into sustain, release part-way, then retrigger.
	for i := 0; i < cfg.Attack+cfg.Decay; i++ {
		stepEnv(&e, &cfg)
	}
	e.triggerRelease(&cfg)
	for i := 0; i < cfg.Release/4; i++ {
		stepEnv(&e, &cfg)
	}

	held := e.amplitude(&cfg)
	e.triggerAttack(held, 1)

	if got := e.amplitude(&cfg); got != held {
		t.Errorf("retriggered attack starts at %v, want %v", got, held)
	}

	// The new attack must climb from there without a jump.
	prev := held
	for i := 0; i < cfg.Attack; i++ {
		amp := stepEnv(&e, &cfg)
		if amp < prev-1e-12 {
			t.Fatalf("retriggered attack not monotonic at sample %d: %v after %v", i, amp, prev)
		}
		prev = amp
	}
}

func TestEnvelope_OffIsInert(t *testing.T) {
	t.Parallel()

	cfg := testEnvConfig()
	var e envelope

	for i := 0; i < 100; i++ {
		if amp := stepEnv(&e, &cfg); amp != 0 {
			t.Fatalf("off amplitude at sample %d = %v, want 0", i, amp)
		}
	}
	if e.stage != stageOff {
		t.Errorf("stage after idling off = %v, want stageOff", e.stage)
	}
}
