// SPDX-License-Identifier: EPL-2.0

package polysine

import (
	"fmt"
	"io"

	"github.com/ik5/polysine/audio"
	"github.com/ik5/polysine/formats/wav"
	"github.com/ik5/polysine/score"
	"github.com/ik5/polysine/synth"
	"github.com/ik5/polysine/utils"
)

// DefaultBlockSize is the render block length used by the convenience
// functions. 512 frames is ~10ms at 48kHz, a typical host block.
const DefaultBlockSize = 512

// RenderScore renders notes offline and collects the whole signal as
// 16-bit PCM at sampleRate.
//
// The pipeline mirrors what a live host would run, block by block:
//  1. The notes are compiled into a frame-accurate event sequence
//  2. A synthesizer renders the sequence block by block
//  3. The stream runs until every release tail has decayed
//  4. float32 samples are converted to int16 PCM
//
// For streaming output, or to interpose a Mixer or Resampler, build
// the pipeline directly from the synth, score and audio packages.
//
// Example:
//
//	pcm16, err := polysine.RenderScore(notes, 48000, synth.DefaultConfig())
//	if err != nil {
//	    // Handle error
//	}
//	// pcm16 now holds the full performance, release tails included
func RenderScore(notes []score.Note, sampleRate int, cfg synth.Config) ([]int16, error) {
	src, err := newScoreSource(notes, sampleRate, cfg)
	if err != nil {
		return nil, err
	}

	pcm16 := make([]int16, 0, sampleRate)
	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}
		if err == io.EOF {
			return pcm16, nil
		}
		if err != nil {
			return pcm16, fmt.Errorf("%w", err)
		}
	}
}

// BounceScore renders notes straight into w as a mono 16-bit PCM WAV
// file and returns the number of frames written.
func BounceScore(w io.WriteSeeker, notes []score.Note, sampleRate int, cfg synth.Config) (int, error) {
	src, err := newScoreSource(notes, sampleRate, cfg)
	if err != nil {
		return 0, err
	}
	return wav.WriteSource(w, src)
}

func newScoreSource(notes []score.Note, sampleRate int, cfg synth.Config) (*audio.SynthSource, error) {
	s, err := synth.New(sampleRate, cfg)
	if err != nil {
		return nil, err
	}
	seq, err := score.New(notes)
	if err != nil {
		return nil, err
	}
	return audio.NewSynthSource(s, seq, DefaultBlockSize)
}
