// SPDX-License-Identifier: EPL-2.0

// Package synth implements a polyphonic sine synthesizer driven by
// note-on/note-off performance events.
//
// The synthesizer keeps one voice per pitch (128 in total) in a fixed
// array allocated once at construction. Each voice is a single sine
// partial shaped by an ADSR amplitude envelope; striking a pitch that
// is already sounding restarts its attack from the amplitude it holds
// at that instant, so retriggering never produces a click.
//
// # Processing Model
//
// Audio is produced in blocks. Per block the caller hands the
// synthesizer the events that fall inside it, each tagged with a frame
// offset, and an output buffer:
//
//	s, err := synth.New(48000, synth.DefaultConfig())
//	if err != nil {
//	    // Handle error
//	}
//
//	events := []synth.Event{
//	    synth.NoteOn(69, 127, 0),   // A4 at the block's first frame
//	    synth.NoteOn(64, 100, 128), // E4, 128 frames later
//	}
//	out := make([]float32, 256)
//	s.ProcessBlock(events, out)
//
// Events are drained in arrival order before the first frame renders.
// A note-off releases its voice immediately; a note-on takes effect at
// its exact frame offset, so scheduling is sample-accurate within the
// block.
//
// # Real-Time Safety
//
// ProcessBlock is written for audio callbacks: it does not allocate,
// lock, block or return errors, and its per-frame cost is bounded by
// the number of sounding voices. Malformed events (unknown status
// kinds, out-of-range pitches) are dropped at the decode boundary
// before rendering starts.
//
// Voice state is owned by whichever single goroutine calls
// ProcessBlock; the package adds no synchronization of its own.
//
// # Envelope
//
// The ADSR envelope ramps linearly through attack, decay, sustain and
// release. Stage lengths are counted in samples and shared by all
// voices via Config. Velocity scales the envelope's target amplitude:
// a velocity-127 note peaks at 1.0 before MasterGain, a velocity-64
// note at roughly half that.
//
// # Output Format
//
// Samples are mono float32. A single voice stays within
// [-MasterGain, +MasterGain]; chords sum their voices, so pick
// MasterGain with the expected polyphony in mind.
package synth
