// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/polysine/audio"
	"github.com/ik5/polysine/utils"
)

// WritePCM16 writes samples as a mono 16-bit PCM WAV at sampleRate.
// go-audio handles the RIFF bookkeeping, which is why the destination
// must support seeking: the header sizes are patched on Close.
func WritePCM16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WriteSource drains a mono source into w as 16-bit PCM WAV, chunk by
// chunk, and returns the number of frames written.
func WriteSource(w io.WriteSeeker, src audio.Source) (int, error) {
	if src.Channels() != 1 {
		return 0, ErrOnlyMonoSupported
	}

	enc := gowav.NewEncoder(w, src.SampleRate(), 16, 1, 1)

	const chunk = 4096
	fbuf := make([]float32, chunk)
	ibuf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: src.SampleRate()},
		SourceBitDepth: 16,
		Data:           make([]int, 0, chunk),
	}

	frames := 0
	for {
		n, err := src.ReadSamples(fbuf)
		if n > 0 {
			ibuf.Data = ibuf.Data[:n]
			for i := 0; i < n; i++ {
				ibuf.Data[i] = int(utils.Float32ToInt16(fbuf[i]))
			}
			if werr := enc.Write(ibuf); werr != nil {
				return frames, fmt.Errorf("%w", werr)
			}
			frames += n
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return frames, fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("%w", err)
	}
	return frames, nil
}
