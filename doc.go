// SPDX-License-Identifier: EPL-2.0

// Package polysine is a polyphonic sine synthesizer: it turns
// note-on/note-off performance events into an envelope-shaped audio
// signal, one sine partial per pitch.
//
// The module is built for real-time use: the core render path never
// allocates, locks or returns errors, keeps one fixed voice per pitch,
// and schedules events on their exact sample within a block.
// Retriggering a sounding pitch restarts its attack from the current
// amplitude, so the signal stays click-free.
//
// # Packages
//
//   - synth: the synthesizer core (voices, ADSR envelopes, event
//     decoding, block rendering)
//   - score: frame-accurate note sequences for driving the synth
//   - audio: pull-based streaming, mixing and resampling
//   - formats/wav: PCM 16-bit WAV output
//   - player: playback through the default audio device
//
// # Quick Start
//
// The simplest way to produce audio is rendering a score offline:
//
//	notes := []score.Note{
//	    {Pitch: 60, Velocity: 100, Start: 0, Duration: 24000},
//	    {Pitch: 64, Velocity: 100, Start: 24000, Duration: 24000},
//	    {Pitch: 67, Velocity: 100, Start: 48000, Duration: 24000},
//	}
//
//	// Render to 16-bit PCM at 48kHz
//	pcm16, err := polysine.RenderScore(notes, 48000, synth.DefaultConfig())
//
//	// Or bounce straight to a WAV file
//	file, _ := os.Create("take.wav")
//	frames, err := polysine.BounceScore(file, notes, 48000, synth.DefaultConfig())
//
// # Driving the Core Directly
//
// A host with its own audio callback feeds the synthesizer per block:
//
//	s, err := synth.New(48000, synth.DefaultConfig())
//
//	// inside the callback, once per block:
//	s.ProcessBlock(events, out)
//
// Events carry a frame offset inside the block, so a note can start on
// any sample, not just on block boundaries. ProcessBlock is
// allocation-free and safe for real-time deadlines.
//
// # Streaming Pipelines
//
// For more control, chain the audio subpackage's sources:
//
//	src, err := audio.NewSynthSource(s, seq, 512)
//	res, err := audio.NewResampler(src, 44100)
//	mix, err := audio.NewMixer(res, other)
//
// and drain with ReadSamples, or hand the source to player.New for
// live playback.
package polysine
