package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

type FFmpegDecoder struct {
	FFmpegPath string
	SampleRate int
}

// Ensure FFmpegDecoder implements Decoder
var _ Decoder = &FFmpegDecoder{}

func NewFFmpegDecoder(ffmpegPath string, sampleRate int) *FFmpegDecoder {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if sampleRate <= 0 {
		sampleRate = 16000
	}
	return &FFmpegDecoder{
		FFmpegPath: ffmpegPath,
		SampleRate: sampleRate,
	}
}

// ToFLAC shells out to ffmpeg to convert the clip to mono FLAC at the
// configured sample rate. All intermediate files live in a per-call temp dir
// that is removed on every exit path.
func (d *FFmpegDecoder) ToFLAC(ctx context.Context, audio []byte, formatHint string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "tutor-audio-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	inPath := filepath.Join(dir, "input"+extensionFor(formatHint))
	outPath := filepath.Join(dir, "output.flac")

	if err := os.WriteFile(inPath, audio, 0600); err != nil {
		return nil, fmt.Errorf("write temp audio: %w", err)
	}

	cmd := exec.CommandContext(ctx, d.FFmpegPath,
		"-y",
		"-i", inPath,
		"-ar", strconv.Itoa(d.SampleRate),
		"-ac", "1",
		"-f", "flac",
		outPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("ffmpeg decode failed: %w: %s", err, truncate(string(out), 300))
	}

	flac, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio: %w", err)
	}
	return flac, nil
}

// extensionFor guesses a file extension from the declared MIME/container hint
// so ffmpeg can pick the right demuxer. Unknown hints get a neutral extension;
// ffmpeg probes the content anyway.
func extensionFor(mimeHint string) string {
	hint := strings.ToLower(mimeHint)
	if i := strings.Index(hint, ";"); i >= 0 {
		hint = hint[:i]
	}
	switch {
	case strings.Contains(hint, "webm"):
		return ".webm"
	case strings.Contains(hint, "ogg"), strings.Contains(hint, "opus"):
		return ".ogg"
	case strings.Contains(hint, "wav"), strings.Contains(hint, "x-wav"):
		return ".wav"
	case strings.Contains(hint, "mp3"), strings.Contains(hint, "mpeg"):
		return ".mp3"
	case strings.Contains(hint, "mp4"), strings.Contains(hint, "m4a"), strings.Contains(hint, "aac"):
		return ".m4a"
	case strings.Contains(hint, "flac"):
		return ".flac"
	default:
		return ".bin"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
