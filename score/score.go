// SPDX-License-Identifier: EPL-2.0

package score

import (
	"sort"

	"github.com/ik5/polysine/synth"
)

// Note is one scheduled note: it starts Start frames into the
// sequence and releases Duration frames later.
type Note struct {
	Pitch    byte
	Velocity byte
	Start    int
	Duration int
}

// Sequence is an immutable, frame-addressed list of notes. Build one
// with New and slice it into blocks with EventsForBlock.
type Sequence struct {
	events []timedEvent
	length int
}

// timedEvent is a performance message pinned to an absolute frame.
type timedEvent struct {
	frame int
	event synth.Event
}

// New compiles notes into a sequence. Notes with an out-of-range
// pitch, a negative start or a non-positive duration are rejected;
// overlapping notes for the same pitch are allowed and behave as
// retriggers. The note order does not matter.
func New(notes []Note) (*Sequence, error) {
	seq := &Sequence{events: make([]timedEvent, 0, 2*len(notes))}

	for _, n := range notes {
		if int(n.Pitch) >= synth.NumPitches {
			return nil, ErrPitchOutOfRange
		}
		if n.Start < 0 || n.Duration <= 0 {
			return nil, ErrInvalidNoteTiming
		}

		off := n.Start + n.Duration
		seq.events = append(seq.events,
			timedEvent{frame: n.Start, event: synth.NoteOn(n.Pitch, n.Velocity, 0)},
			timedEvent{frame: off, event: synth.NoteOff(n.Pitch, 0)},
		)
		if off > seq.length {
			seq.length = off
		}
	}

	// Stable keeps same-frame events in authored order, so a note-off
	// and a retriggering note-on at the same frame stay sequenced.
	sort.SliceStable(seq.events, func(i, j int) bool {
		return seq.events[i].frame < seq.events[j].frame
	})

	return seq, nil
}

// Length returns the frame at which the last note releases. The tail
// of its envelope sounds past this point.
func (s *Sequence) Length() int { return s.length }

// EventsForBlock appends the sequence's events for the block starting
// at frame blockStart to dst, with frame offsets rebased to the block,
// and returns the extended slice. Events are emitted in frame order;
// passing a reused dst keeps the per-block path allocation-free.
func (s *Sequence) EventsForBlock(dst []synth.Event, blockStart, blockSize int) []synth.Event {
	// Binary search to the first event at or past blockStart.
	i := sort.Search(len(s.events), func(i int) bool {
		return s.events[i].frame >= blockStart
	})

	for ; i < len(s.events) && s.events[i].frame < blockStart+blockSize; i++ {
		ev := s.events[i].event
		ev.FrameOffset = uint32(s.events[i].frame - blockStart)
		dst = append(dst, ev)
	}
	return dst
}
