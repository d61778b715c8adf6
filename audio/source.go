// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/polysine/score"
	"github.com/ik5/polysine/synth"
)

// SynthSource streams a synthesizer playing a score as a Source.
//
// It bridges the synthesizer's block-callback model into the pull
// model of this package: each time the internal buffer runs dry the
// next block of the sequence is rendered, events placed on their exact
// frames. The synthesizer applies note-offs the moment a block's
// events are drained, so blocks are rendered in stretches split at the
// note-off frames; each release then begins exactly where the score
// put it. The stream ends once the sequence is exhausted and every
// envelope has rung out to silence.
type SynthSource struct {
	s   *synth.Synthesizer
	seq *score.Sequence

	blockSize  int
	blockStart int

	events  []synth.Event
	stretch []synth.Event
	buf     []float32
	pos     int
	done    bool
}

// NewSynthSource wraps s playing seq, rendering blockSize frames per
// block. The synthesizer must not be driven by anyone else while the
// source is in use.
func NewSynthSource(s *synth.Synthesizer, seq *score.Sequence, blockSize int) (*SynthSource, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}

	return &SynthSource{
		s:         s,
		seq:       seq,
		blockSize: blockSize,
		events:    make([]synth.Event, 0, 64),
		stretch:   make([]synth.Event, 0, 16),
		buf:       make([]float32, blockSize),
		pos:       blockSize, // force a render on first read
	}, nil
}

func (ss *SynthSource) SampleRate() int { return ss.s.SampleRate() }
func (ss *SynthSource) Channels() int   { return 1 }
func (ss *SynthSource) BufSize() int    { return ss.blockSize }
func (ss *SynthSource) Close() error    { return nil }

// ReadSamples fills dst from the rendered stream.
func (ss *SynthSource) ReadSamples(dst []float32) (int, error) {
	written := 0

	for written < len(dst) {
		if ss.pos == len(ss.buf) {
			if err := ss.renderBlock(); err != nil {
				return written, err
			}
		}

		n := copy(dst[written:], ss.buf[ss.pos:])
		ss.pos += n
		written += n
	}

	return written, nil
}

// renderBlock produces the next block into the internal buffer, or
// reports io.EOF when nothing is left to sound.
//
// The block is rendered in stretches bounded by note-off frames: a
// note-off due mid-block must not be handed to the synthesizer before
// the frames ahead of it have been rendered, or the release would cut
// the note short by up to a block.
func (ss *SynthSource) renderBlock() error {
	if ss.done {
		return io.EOF
	}
	if ss.blockStart >= ss.seq.Length() && ss.s.ActiveVoices() == 0 {
		ss.done = true
		return io.EOF
	}

	ss.events = ss.seq.EventsForBlock(ss.events[:0], ss.blockStart, ss.blockSize)

	start, next := 0, 0
	for start < ss.blockSize {
		// The stretch ends at the first note-off past its start, so
		// that note-off applies exactly on its frame when the next
		// stretch drains it.
		end := ss.blockSize
		for _, ev := range ss.events[next:] {
			if ev.IsNoteOff() && int(ev.FrameOffset) > start {
				end = int(ev.FrameOffset)
				break
			}
		}

		ss.stretch = ss.stretch[:0]
		for next < len(ss.events) && int(ss.events[next].FrameOffset) < end {
			ev := ss.events[next]
			ev.FrameOffset -= uint32(start)
			ss.stretch = append(ss.stretch, ev)
			next++
		}

		ss.s.ProcessBlock(ss.stretch, ss.buf[start:end])
		start = end
	}

	ss.blockStart += ss.blockSize
	ss.pos = 0

	return nil
}
