// SPDX-License-Identifier: EPL-2.0

package synth_test

import (
	"fmt"

	"github.com/ik5/polysine/synth"
)

// Example demonstrates rendering one block with a scheduled note.
func Example() {
	s, err := synth.New(48000, synth.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	events := []synth.Event{
		synth.NoteOn(69, 127, 0), // A4, first frame of the block
	}
	out := make([]float32, 256)
	s.ProcessBlock(events, out)

	fmt.Printf("Active voices: %d\n", s.ActiveVoices())
	fmt.Printf("First sample silent: %v\n", out[0] == 0)
	fmt.Printf("Block is audible: %v\n", out[100] != 0)
	// Output:
	// Active voices: 1
	// First sample silent: true
	// Block is audible: true
}

// Example_frequencyTable shows the pitch-to-frequency mapping.
func Example_frequencyTable() {
	freqs := synth.NewFrequencyTable()

	fmt.Printf("Pitch 69: %.0f Hz\n", freqs.Frequency(69))
	fmt.Printf("Pitch 21: %.1f Hz\n", freqs.Frequency(21))
	// Output:
	// Pitch 69: 440 Hz
	// Pitch 21: 27.5 Hz
}
