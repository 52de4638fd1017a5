package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-tutor-be/pkg/speech"
)

func TestTranscribeSuccess(t *testing.T) {
	var gotLang string
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.URL.Query().Get("lang")
		gotContentType = r.Header.Get("Content-Type")
		// First line empty result, second line the transcript - the API's
		// usual streaming shape.
		w.Write([]byte(`{"result":[]}` + "\n"))
		w.Write([]byte(`{"result":[{"alternative":[{"transcript":"what is gravity","confidence":0.92}],"final":true}],"result_index":0}` + "\n"))
	}))
	defer srv.Close()

	rec := NewRecognizer("key", srv.URL)
	text, err := rec.Transcribe(context.Background(), []byte("flac"), 16000, "en-IN")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "what is gravity" {
		t.Errorf("text = %q", text)
	}
	if gotLang != "en-IN" {
		t.Errorf("lang = %q, want en-IN", gotLang)
	}
	if gotContentType != "audio/x-flac; rate=16000" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestTranscribeNoLocaleOmitsLangParam(t *testing.T) {
	var hadLang bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hadLang = r.URL.Query().Has("lang")
		w.Write([]byte(`{"result":[{"alternative":[{"transcript":"ok"}]}]}` + "\n"))
	}))
	defer srv.Close()

	rec := NewRecognizer("key", srv.URL)
	if _, err := rec.Transcribe(context.Background(), []byte("flac"), 16000, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hadLang {
		t.Error("empty locale must not send a lang param")
	}
}

func TestTranscribeEmptyResultIsNotUnderstood(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[]}` + "\n"))
	}))
	defer srv.Close()

	rec := NewRecognizer("key", srv.URL)
	_, err := rec.Transcribe(context.Background(), []byte("flac"), 16000, "en-IN")

	if !errors.Is(err, speech.ErrNotUnderstood) {
		t.Errorf("err = %v, want ErrNotUnderstood", err)
	}
}

func TestTranscribeServerErrorIsServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	rec := NewRecognizer("key", srv.URL)
	_, err := rec.Transcribe(context.Background(), []byte("flac"), 16000, "en-IN")

	if !errors.Is(err, speech.ErrServiceUnavailable) {
		t.Errorf("err = %v, want ErrServiceUnavailable", err)
	}
}

func TestTranscribeTransportErrorIsServiceUnavailable(t *testing.T) {
	rec := NewRecognizer("key", "http://127.0.0.1:1")
	_, err := rec.Transcribe(context.Background(), []byte("flac"), 16000, "en-IN")

	if !errors.Is(err, speech.ErrServiceUnavailable) {
		t.Errorf("err = %v, want ErrServiceUnavailable", err)
	}
}
