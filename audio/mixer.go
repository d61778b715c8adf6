// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Mixer sums several mono sources into one mono stream, for layering
// independently rendered parts (for example, two synthesizers playing
// different scores). Finished sources contribute silence; the mix ends
// when the last source does.
//
// Summing does not normalize: three full-scale sources can reach 3.0.
// Keep the per-source gain low enough for the expected layer count.
type Mixer struct {
	srcs []Source
	done []bool
	tmp  []float32
}

// NewMixer builds a mixer over srcs. All sources must be mono and
// share one sample rate.
func NewMixer(srcs ...Source) (*Mixer, error) {
	if len(srcs) == 0 {
		return nil, ErrNoSources
	}

	rate := srcs[0].SampleRate()
	for _, src := range srcs {
		if src.Channels() != 1 {
			return nil, ErrNotMono
		}
		if src.SampleRate() != rate {
			return nil, ErrSampleRateMismatch
		}
	}

	return &Mixer{
		srcs: srcs,
		done: make([]bool, len(srcs)),
		tmp:  make([]float32, 4096),
	}, nil
}

func (m *Mixer) SampleRate() int { return m.srcs[0].SampleRate() }
func (m *Mixer) Channels() int   { return 1 }

func (m *Mixer) BufSize() int {
	size := 0
	for _, src := range m.srcs {
		if b := src.BufSize(); b > size {
			size = b
		}
	}
	return size
}

func (m *Mixer) Close() error {
	for _, src := range m.srcs {
		if err := src.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// ReadSamples fills dst with the sum of all live sources. The count
// returned is the longest read among them, so shorter sources fade to
// silence instead of truncating the mix.
func (m *Mixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(m.tmp) < len(dst) {
		m.tmp = make([]float32, len(dst))
	}
	tmp := m.tmp[:len(dst)]

	for i := range dst {
		dst[i] = 0
	}

	longest := 0
	for i, src := range m.srcs {
		if m.done[i] {
			continue
		}

		// Drain the source up to len(dst); a source may return short
		// reads before its EOF. A read of (0, nil) is a momentary gap,
		// not end-of-stream: stop draining and retry on the next call.
		read := 0
		for read < len(dst) {
			n, err := src.ReadSamples(tmp[read:])
			read += n
			if err == io.EOF {
				m.done[i] = true
				break
			}
			if err != nil {
				return 0, fmt.Errorf("%w", err)
			}
			if n == 0 {
				break
			}
		}

		for j := 0; j < read; j++ {
			dst[j] += tmp[j]
		}
		if read > longest {
			longest = read
		}
	}

	for _, d := range m.done {
		if !d {
			return longest, nil
		}
	}
	return longest, io.EOF
}
