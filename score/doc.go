// SPDX-License-Identifier: EPL-2.0

// Package score schedules note sequences for block-based rendering.
//
// A Sequence pins note-on/note-off events to absolute frames and hands
// them out one block at a time, with offsets rebased so the
// synthesizer can place each event on its exact sample:
//
//	seq, err := score.New([]score.Note{
//	    {Pitch: 60, Velocity: 100, Start: 0, Duration: 24000},
//	    {Pitch: 64, Velocity: 100, Start: 12000, Duration: 24000},
//	})
//	if err != nil {
//	    // Handle error
//	}
//
//	var events []synth.Event
//	for blockStart := 0; blockStart < seq.Length(); blockStart += 512 {
//	    events = seq.EventsForBlock(events[:0], blockStart, 512)
//	    s.ProcessBlock(events, out)
//	}
//
// Note that the synthesizer applies note-offs as soon as a block's
// events are drained. A driver that needs releases to land on their
// exact frames must split each block at the note-off offsets;
// audio.SynthSource does exactly that.
//
// Sequences are immutable after New, so one sequence can feed several
// renders concurrently.
package score
