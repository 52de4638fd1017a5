package serverutils

import (
	"encoding/base64"
	"testing"
)

func TestDecodeDataURI(t *testing.T) {
	payload := []byte("hello media")
	encoded := base64.StdEncoding.EncodeToString(payload)

	tests := []struct {
		name     string
		uri      string
		wantMime string
		wantErr  bool
	}{
		{"image data uri", "data:image/png;base64," + encoded, "image/png", false},
		{"audio data uri", "data:audio/webm;base64," + encoded, "audio/webm", false},
		{"bare base64", encoded, "", false},
		{"missing comma", "data:image/png;base64", "", true},
		{"bad base64", "data:image/png;base64,@@@", "", true},
		{"empty payload", "data:image/png;base64,", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, data, err := DecodeDataURI(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mime != tt.wantMime {
				t.Errorf("mime = %q, want %q", mime, tt.wantMime)
			}
			if string(data) != string(payload) {
				t.Errorf("data = %q, want %q", data, payload)
			}
		})
	}
}
