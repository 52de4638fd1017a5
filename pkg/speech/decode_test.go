package speech

import "testing"

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		hint string
		want string
	}{
		{"audio/webm", ".webm"},
		{"audio/webm;codecs=opus", ".webm"},
		{"audio/ogg", ".ogg"},
		{"audio/wav", ".wav"},
		{"audio/x-wav", ".wav"},
		{"audio/mpeg", ".mp3"},
		{"audio/mp4", ".m4a"},
		{"audio/flac", ".flac"},
		{"", ".bin"},
		{"application/octet-stream", ".bin"},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			if got := extensionFor(tt.hint); got != tt.want {
				t.Errorf("extensionFor(%q) = %q, want %q", tt.hint, got, tt.want)
			}
		})
	}
}
