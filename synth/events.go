// SPDX-License-Identifier: EPL-2.0

package synth

// Event is one 3-byte performance message tagged with the exact frame
// inside the current processing block at which it takes effect.
type Event struct {
	Status      byte
	Data1       byte
	Data2       byte
	FrameOffset uint32
}

// Status-byte high nibbles acted on by the synthesizer. Any other
// message kind is silently ignored.
const (
	kindNoteOff = 0x8
	kindNoteOn  = 0x9
)

// NoteOn builds a note-on event for pitch at velocity, scheduled
// offset frames into the block.
func NoteOn(pitch, velocity byte, offset uint32) Event {
	return Event{Status: kindNoteOn << 4, Data1: pitch, Data2: velocity, FrameOffset: offset}
}

// NoteOff builds a note-off event for pitch. Note-offs apply when the
// block's events are drained, so offset is carried but not acted on.
func NoteOff(pitch byte, offset uint32) Event {
	return Event{Status: kindNoteOff << 4, Data1: pitch, FrameOffset: offset}
}

// IsNoteOff reports whether the event is a note-off message. Callers
// that schedule ahead use this to hold a note-off back until the render
// reaches its frame, since ProcessBlock applies note-offs immediately.
func (e Event) IsNoteOff() bool {
	return e.Status>>4 == kindNoteOff
}

// applyEvent decodes one event and dispatches it to the voice pool.
// blockSize bounds the frame offset a note-on may schedule.
//
// The decode boundary is also where malformed input stops: unknown
// status kinds and pitches outside [0, NumPitches) are dropped here,
// so the render path never sees them.
func (s *Synthesizer) applyEvent(ev Event, blockSize int) {
	pitch := ev.Data1
	if int(pitch) >= NumPitches {
		return
	}

	switch ev.Status >> 4 {
	case kindNoteOn:
		s.noteOn(pitch, ev.Data2, int(ev.FrameOffset), blockSize)
	case kindNoteOff:
		s.noteOff(pitch)
	}
}

// noteOn records velocity and schedules the voice's attack for the
// given frame. A second note-on for the same pitch inside one block
// overwrites the earlier pending start.
func (s *Synthesizer) noteOn(pitch, velocity byte, offset, blockSize int) {
	if offset >= blockSize {
		// Caller contract violation; land the start on the last frame
		// rather than leaving a start pending past the block.
		offset = blockSize - 1
		if offset < 0 {
			offset = 0
		}
	}

	v := &s.voices[pitch]
	v.velocity = velocity
	v.pending = offset
}

// noteOff forces the voice into its release ramp immediately, seeded
// from the amplitude it holds right now. A start still pending for the
// pitch is cancelled: the note it would have begun is already over. A
// note-off for a voice that is not sounding does nothing.
func (s *Synthesizer) noteOff(pitch byte) {
	v := &s.voices[pitch]
	v.pending = noPendingStart
	if v.env.stage == stageOff {
		return
	}
	v.env.triggerRelease(&s.cfg)
}
