// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// mockSource generates deterministic audio data for tests.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int
	generated    int
	waveform     func(sample int) float32
}

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int) float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func newConstantSource(sampleRate, totalSamples int, value float32) *mockSource {
	return newMockSource(sampleRate, 1, totalSamples, func(sample int) float32 {
		return value
	})
}

func newSineSource(sampleRate, totalSamples int, frequency float64) *mockSource {
	return newMockSource(sampleRate, 1, totalSamples, func(sample int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	n := len(dst)
	if avail := m.totalSamples - m.generated; n > avail {
		n = avail
	}

	for i := 0; i < n; i++ {
		dst[i] = m.waveform(m.generated + i)
	}
	m.generated += n

	if m.generated >= m.totalSamples {
		return n, io.EOF
	}
	return n, nil
}

// collect drains a source completely.
func collect(src Source, bufSize int) ([]float32, error) {
	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
