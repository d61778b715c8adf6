// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming layer around the synthesizer.
//
// This package turns block-based rendering into pull-based Sources
// that can be chained, mixed and rate-converted:
//   - Source interface for audio streams
//   - SynthSource streams a synthesizer playing a score
//   - Mixer sums several mono sources
//   - Resampler for sample rate conversion
//
// # Source Interface
//
// The Source interface is the foundation of the streaming layer:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All producers and processors implement this interface, allowing
// them to be chained together in pipelines.
//
// # Streaming a Synthesizer
//
// SynthSource renders a score block by block on demand:
//
//	src, err := audio.NewSynthSource(s, seq, 512)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// The stream ends (io.EOF) once the score is exhausted and every
// envelope has decayed to silence, so release tails are never cut off.
//
// # Mixing
//
// Mixer layers independently rendered parts:
//
//	mix, err := audio.NewMixer(lead, bass)
//	n, err := mix.ReadSamples(buf)
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation:
//
//	res, err := audio.NewResampler(src, 44100)
//	n, err := res.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// A synthesizer stream actually stays within its master gain; the mix
// of several streams can exceed it, so budget gain per layer.
//
// # Error Handling
//
// Streams return io.EOF when no more data is available:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
