// SPDX-License-Identifier: EPL-2.0

// Package wav writes rendered audio as PCM 16-bit WAV files.
//
// It uses the github.com/go-audio library for the RIFF encoding, so
// destinations must implement io.WriteSeeker (the header is finalized
// when encoding completes).
//
// # Writing Collected Samples
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WritePCM16(file, 48000, samples)
//
// # Writing a Stream
//
// WriteSource drains any mono audio.Source directly to disk, which
// avoids holding a whole render in memory:
//
//	src, _ := audio.NewSynthSource(s, seq, 512)
//	file, _ := os.Create("bounce.wav")
//	frames, err := wav.WriteSource(file, src)
package wav
