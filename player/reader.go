// SPDX-License-Identifier: EPL-2.0

package player

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/polysine/audio"
)

// sourceReader adapts an audio.Source to the io.Reader oto pulls
// from, encoding samples as little-endian float32.
type sourceReader struct {
	src audio.Source
	buf []float32
	eof bool
}

func newSourceReader(src audio.Source) *sourceReader {
	return &sourceReader{
		src: src,
		buf: make([]float32, 4096),
	}
}

func (r *sourceReader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	}

	samples := len(p) / 4
	if samples == 0 {
		return 0, nil
	}
	if samples > len(r.buf) {
		r.buf = make([]float32, samples)
	}

	n, err := r.src.ReadSamples(r.buf[:samples])
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(p[4*i:4*i+4], math.Float32bits(r.buf[i]))
	}

	if err == io.EOF {
		r.eof = true
		if n == 0 {
			return 0, io.EOF
		}
		return 4 * n, nil
	}
	if err != nil {
		return 4 * n, err
	}
	return 4 * n, nil
}
