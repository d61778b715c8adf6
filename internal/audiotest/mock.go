// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates deterministic mono audio for tests. It
// implements the audio.Source interface (without importing it to avoid
// cycles); the synthesizer and everything downstream of it is mono, so
// the mock is too.
type MockSource struct {
	sampleRate   int
	totalSamples int
	generated    int
	waveform     func(sample int) float32
}

// NewMockSource creates a mock source producing totalSamples values of
// waveform at sampleRate.
func NewMockSource(sampleRate, totalSamples int, waveform func(sample int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(sample int) float32 {
		return 0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(sample int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource creates a mock source climbing linearly from 0 to 1.
func NewRampSource(sampleRate, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(sample int) float32 {
		return float32(sample) / float32(totalSamples)
	})
}

// NewSliceSource creates a mock source serving exactly data.
func NewSliceSource(sampleRate int, data []float32) *MockSource {
	return NewMockSource(sampleRate, len(data), func(sample int) float32 {
		return data[sample]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return 1 }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
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

// StereoSource reports two channels over a silent stream. The mono-only
// entry points reject it before reading any samples.
type StereoSource struct {
	*MockSource
}

// NewStereoSource creates a source for exercising mono-only guards.
func NewStereoSource(sampleRate int) *StereoSource {
	return &StereoSource{MockSource: NewSilentSource(sampleRate, 0)}
}

func (s *StereoSource) Channels() int { return 2 }
