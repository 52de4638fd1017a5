package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-tutor-be/internal/constant"
	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/pkg/demo"
	"ai-tutor-be/pkg/llm"
	"ai-tutor-be/pkg/store"
)

// ITutorService turns a normalized question plus a student profile into an
// answer. Remote-API failures never escape: they converge to the local demo
// responder, so Answer always produces a usable result.
type ITutorService interface {
	Answer(ctx context.Context, question string, profile *store.StudentProfile) *dto.AnswerResult
}

type TutorOptions struct {
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

type tutorService struct {
	llmProvider  llm.LLMProvider // nil means unconfigured → demo mode
	responder    *demo.Responder
	systemPrompt string
	opts         TutorOptions
	logger       logger.ILogger
}

func NewTutorService(
	llmProvider llm.LLMProvider,
	responder *demo.Responder,
	systemPrompt string,
	opts TutorOptions,
	log logger.ILogger,
) ITutorService {
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = constant.DefaultSystemPrompt
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 45 * time.Second
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1024
	}
	if opts.Temperature <= 0 {
		opts.Temperature = 0.7
	}
	return &tutorService{
		llmProvider:  llmProvider,
		responder:    responder,
		systemPrompt: systemPrompt,
		opts:         opts,
		logger:       log,
	}
}

func (s *tutorService) Answer(ctx context.Context, question string, profile *store.StudentProfile) *dto.AnswerResult {
	if s.llmProvider == nil {
		return s.demoResult(question, profile, constant.NoteDemoMode)
	}

	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: s.systemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: buildContextPrompt(question, profile)},
	}

	callCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	reply, err := s.llmProvider.Chat(callCtx, history,
		llm.WithModel(s.opts.Model),
		llm.WithMaxTokens(s.opts.MaxTokens),
		llm.WithTemperature(s.opts.Temperature),
	)
	if err != nil {
		kind := llm.Classify(err)
		s.logger.Warn("tutor", "Chat API failed, falling back to demo responder", map[string]interface{}{
			"kind":       string(kind),
			"error":      err.Error(),
			"session_id": profile.SessionID,
		})
		return s.demoResult(question, profile, fallbackNote(kind))
	}

	return &dto.AnswerResult{
		Success:   true,
		Response:  strings.TrimSpace(reply),
		Timestamp: time.Now(),
	}
}

func (s *tutorService) demoResult(question string, profile *store.StudentProfile, note string) *dto.AnswerResult {
	return &dto.AnswerResult{
		Success:   true,
		Response:  s.responder.Generate(question, profile),
		Note:      note,
		Timestamp: time.Now(),
	}
}

// buildContextPrompt combines the student's pedagogical context with the
// literal question into the single user message sent to the model.
func buildContextPrompt(question string, profile *store.StudentProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Student %s is in %s under the %s board. ", profile.DisplayName, profile.ClassLevel, profile.Board)
	fmt.Fprintf(&b, "The preferred language style is %s. ", profile.LanguageStyle)
	b.WriteString("Answer the following question in a way that matches the student's maturity level and preferred language style.\n")
	fmt.Fprintf(&b, "Question: %s", question)
	return b.String()
}

// fallbackNote maps each remote failure kind to the note on the demo answer.
// All kinds converge to the same fallback behavior; only the wording differs.
func fallbackNote(kind llm.ErrorKind) string {
	var reason string
	switch kind {
	case llm.ErrKindAuth:
		reason = "credential rejected"
	case llm.ErrKindRateLimit:
		reason = "rate limit exceeded"
	case llm.ErrKindAPI:
		reason = "API error"
	default:
		reason = "network error"
	}
	return fmt.Sprintf(constant.NoteFallbackTemplate, reason)
}
