package google

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ai-tutor-be/pkg/speech"
)

const defaultBaseURL = "http://www.google.com/speech-api/v2/recognize"

// Recognizer calls the Google Web Speech API. The endpoint takes FLAC audio
// and streams back one JSON object per line; the first non-empty result
// carries the transcript alternatives.
type Recognizer struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// Ensure Recognizer implements speech.Recognizer
var _ speech.Recognizer = &Recognizer{}

func NewRecognizer(apiKey, baseURL string) *Recognizer {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Recognizer{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (r *Recognizer) Name() string {
	return "google-web-speech"
}

// --- Response structs (Internal to this package) ---

type recognizeLine struct {
	Result []struct {
		Alternative []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternative"`
		Final bool `json:"final"`
	} `json:"result"`
}

// --- Interface Implementation ---

func (r *Recognizer) Transcribe(ctx context.Context, flac []byte, sampleRate int, locale string) (string, error) {
	params := url.Values{}
	params.Set("client", "chromium")
	params.Set("key", r.APIKey)
	if locale != "" {
		params.Set("lang", locale)
	}

	endpoint := r.BaseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(flac))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", fmt.Sprintf("audio/x-flac; rate=%d", sampleRate))

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", speech.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", speech.ErrServiceUnavailable, resp.StatusCode, string(body))
	}

	// The API replies with newline-delimited JSON; empty results mean the
	// audio was received but no speech was understood.
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var parsed recognizeLine
		if err := json.Unmarshal([]byte(line), &parsed); err != nil {
			continue
		}
		for _, result := range parsed.Result {
			if len(result.Alternative) > 0 && strings.TrimSpace(result.Alternative[0].Transcript) != "" {
				return strings.TrimSpace(result.Alternative[0].Transcript), nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: read response: %v", speech.ErrServiceUnavailable, err)
	}

	return "", speech.ErrNotUnderstood
}
