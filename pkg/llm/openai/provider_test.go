package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-tutor-be/pkg/llm"
)

func newTestProvider(handler http.HandlerFunc) (*OpenAIProvider, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewOpenAIProvider("test-key", "gpt-4o", srv.URL), srv
}

func TestChatSuccess(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	provider, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "chatcmpl-1",
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": "Gravity pulls things down."}},
			},
		})
	})
	defer srv.Close()

	reply, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "be a tutor"},
		{Role: "user", Content: "what is gravity"},
	}, llm.WithMaxTokens(256))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Gravity pulls things down." {
		t.Errorf("reply = %q", reply)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "gpt-4o" || len(gotReq.Messages) != 2 || gotReq.MaxTokens != 256 {
		t.Errorf("unexpected request payload: %+v", gotReq)
	}
}

func TestChatErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   llm.ErrorKind
	}{
		{"auth", 401, llm.ErrKindAuth},
		{"rate limit", 429, llm.ErrKindRateLimit},
		{"server error", 500, llm.ErrKindAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"error": map[string]string{"message": "nope", "type": "test"},
				})
			})
			defer srv.Close()

			_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "q"}})
			if err == nil {
				t.Fatal("expected error")
			}

			var pErr *llm.ProviderError
			if !errors.As(err, &pErr) {
				t.Fatalf("expected ProviderError, got %T", err)
			}
			if pErr.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", pErr.Kind, tt.want)
			}
		})
	}
}

func TestChatTransportErrorIsNetworkKind(t *testing.T) {
	provider := NewOpenAIProvider("test-key", "gpt-4o", "http://127.0.0.1:1")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "q"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := llm.Classify(err); kind != llm.ErrKindNetwork {
		t.Errorf("Classify() = %v, want %v", kind, llm.ErrKindNetwork)
	}
}

func TestChatEmptyChoices(t *testing.T) {
	provider, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "x", "choices": []interface{}{}})
	})
	defer srv.Close()

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "q"}})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}
