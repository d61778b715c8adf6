// SPDX-License-Identifier: EPL-2.0

package audio

import "testing"

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidBlockSize, "block size must be positive"},
		{ErrInvalidSampleRate, "sample rate must be positive"},
		{ErrNoSources, "mixer needs at least one source"},
		{ErrNotMono, "source must be mono"},
		{ErrSampleRateMismatch, "sources must share one sample rate"},
	}

	for _, tt := range tests {
		if tt.err == nil {
			t.Fatal("sentinel error is nil")
		}
		if tt.err.Error() != tt.want {
			t.Errorf("error = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}
