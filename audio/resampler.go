// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/polysine/utils"
)

// Resampler converts a mono stream to a different sample rate using
// cubic interpolation, for delivering a render to a host that runs at
// another rate than the synthesizer. A one-pole low-pass softens
// aliasing when downsampling.
type Resampler struct {
	src   Source
	ratio float64 // source samples per output sample
	rate  int

	// Sliding window around the source read position i:
	// window[1] = sample i, window[2] = i+1, window[0] and window[3]
	// feed the cubic's outer taps. Edges are duplicated at both ends
	// of the stream.
	window    [4]float32
	filled    int
	synthetic int // held edge samples shifted in after source EOF
	pos       float64
	eof       bool

	filterAlpha float32
	filterState float32
	useFilter   bool

	one [1]float32
}

// NewResampler wraps src, producing samples at dstRate. src must be
// mono.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}
	if dstRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	ratio := float64(src.SampleRate()) / float64(dstRate)

	return &Resampler{
		src:         src,
		ratio:       ratio,
		rate:        dstRate,
		useFilter:   ratio > 1,
		filterAlpha: 0.5,
	}, nil
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return 1 }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fetch shifts one source sample into the window. Past source EOF the
// last real sample is held and counted, so interpolation can finish
// the final stretch before the stream ends.
func (r *Resampler) fetch() error {
	var s float32

	if r.eof {
		s = r.window[3]
		r.synthetic++
	} else {
		n, err := r.src.ReadSamples(r.one[:])
		if n > 0 {
			s = r.one[0]
			if r.useFilter {
				if r.filled == 0 {
					// Seed the filter so the first sample passes clean.
					r.filterState = s
				}
				s = r.filterAlpha*s + (1-r.filterAlpha)*r.filterState
				r.filterState = s
			}
		}
		if err == io.EOF {
			r.eof = true
			if n == 0 {
				if r.filled == 0 {
					return io.EOF
				}
				s = r.window[3]
				r.synthetic++
			}
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	r.window[0] = r.window[1]
	r.window[1] = r.window[2]
	r.window[2] = r.window[3]
	r.window[3] = s

	if r.filled < 4 {
		r.filled++
	}
	return nil
}

// prime loads the initial window: the first source sample doubled at
// the leading edge, plus the two samples ahead of it.
func (r *Resampler) prime() error {
	for i := 0; i < 3; i++ {
		if err := r.fetch(); err != nil {
			return err
		}
	}
	r.window[0] = r.window[1]
	return nil
}

// ReadSamples produces dst samples at the destination rate.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.filled == 0 {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			r.pos--
			if err := r.fetch(); err != nil {
				return written, err
			}
			// Three held samples mean window[1] slid past the last
			// real one; the stream is over.
			if r.synthetic >= 3 {
				return written, io.EOF
			}
		}

		dst[written] = utils.CubicInterpolate(
			r.window[0], r.window[1], r.window[2], r.window[3], float32(r.pos))
		written++
		r.pos += r.ratio
	}

	return written, nil
}
