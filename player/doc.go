// SPDX-License-Identifier: EPL-2.0

// Package player plays audio sources through the default output
// device via oto.
//
//	src, _ := audio.NewSynthSource(s, seq, 512)
//	p, err := player.New(src)
//	if err != nil {
//	    // Handle error
//	}
//	defer p.Close()
//
//	p.Play()
//	p.Wait()
//
// The device is opened at the source's sample rate; resample first if
// the device rate must differ.
package player
