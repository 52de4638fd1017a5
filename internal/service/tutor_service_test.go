package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/pkg/demo"
	"ai-tutor-be/pkg/llm"
	"ai-tutor-be/pkg/store"
)

// mockLLM counts calls and replays a scripted reply or error.
type mockLLM struct {
	reply string
	err   error
	calls int
}

func (m *mockLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return m.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func testProfile() *store.StudentProfile {
	return &store.StudentProfile{
		SessionID:     "sess-1",
		ClassLevel:    "Class 8",
		Board:         "CBSE",
		LanguageStyle: "Hinglish",
		DisplayName:   "Ravi",
	}
}

func newTutor(provider llm.LLMProvider) ITutorService {
	return NewTutorService(provider, demo.NewResponder(), "", TutorOptions{}, logger.NewNop())
}

func TestAnswerSuccess(t *testing.T) {
	mock := &mockLLM{reply: "  Photosynthesis is how plants make food.  "}
	svc := newTutor(mock)

	result := svc.Answer(context.Background(), "what is photosynthesis", testProfile())

	require.True(t, result.Success)
	assert.Equal(t, "Photosynthesis is how plants make food.", result.Response)
	assert.Empty(t, result.Note)
	assert.Equal(t, 1, mock.calls)
}

func TestAnswerUnconfiguredProviderUsesDemoMode(t *testing.T) {
	svc := newTutor(nil)

	result := svc.Answer(context.Background(), "what is photosynthesis", testProfile())

	require.True(t, result.Success)
	assert.NotEmpty(t, result.Response)
	assert.Contains(t, result.Note, "demo mode")
}

func TestAnswerAbsorbsRemoteFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		noteReason string
	}{
		{"auth failure", llm.NewProviderError(llm.ErrKindAuth, errors.New("401")), "credential rejected"},
		{"rate limit", llm.NewProviderError(llm.ErrKindRateLimit, errors.New("429")), "rate limit exceeded"},
		{"api error", llm.NewProviderError(llm.ErrKindAPI, errors.New("500")), "API error"},
		{"transport error", errors.New("connection refused"), "network error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockLLM{err: tt.err}
			svc := newTutor(mock)

			result := svc.Answer(context.Background(), "what is ai", testProfile())

			require.True(t, result.Success, "remote failure must never surface as a request error")
			assert.NotEmpty(t, result.Response)
			assert.Contains(t, result.Note, tt.noteReason)
			assert.Equal(t, 1, mock.calls, "no retry against the remote API")
		})
	}
}

func TestAnswerFallbackIsAgeBanded(t *testing.T) {
	mock := &mockLLM{err: llm.NewProviderError(llm.ErrKindAPI, errors.New("boom"))}
	svc := newTutor(mock)

	young := svc.Answer(context.Background(), "what is photosynthesis", &store.StudentProfile{ClassLevel: "Class 2"})
	old := svc.Answer(context.Background(), "what is photosynthesis", &store.StudentProfile{ClassLevel: "Class 12"})

	assert.NotEqual(t, young.Response, old.Response, "fallback answers should differ by age band")
}

func TestBuildContextPrompt(t *testing.T) {
	prompt := buildContextPrompt("why is the sky blue?", testProfile())

	for _, want := range []string{"Class 8", "CBSE", "Hinglish", "Ravi", "why is the sky blue?"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("context prompt missing %q", want)
		}
	}
}
