package service

import (
	"context"
	"time"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/pkg/serverutils"
	"ai-tutor-be/internal/repository/memory"
	"ai-tutor-be/pkg/store"
)

// IStudentService owns the session → profile registry.
type IStudentService interface {
	Register(ctx context.Context, request *dto.RegisterStudentRequest) (*dto.StudentInfo, error)
	Info(ctx context.Context, sessionID string) (*dto.StudentInfo, error)

	// Profile is the raw lookup used by the query flow.
	Profile(sessionID string) (*store.StudentProfile, bool)
}

type studentService struct {
	sessionRepo *memory.SessionRepository
	logger      logger.ILogger
}

func NewStudentService(sessionRepo *memory.SessionRepository, log logger.ILogger) IStudentService {
	return &studentService{
		sessionRepo: sessionRepo,
		logger:      log,
	}
}

// Register writes or overwrites the profile for a session (last write wins).
func (s *studentService) Register(ctx context.Context, request *dto.RegisterStudentRequest) (*dto.StudentInfo, error) {
	profile := &store.StudentProfile{
		SessionID:     request.SessionID,
		ClassLevel:    request.Class,
		Board:         request.Board,
		LanguageStyle: request.Language,
		DisplayName:   request.Name,
		RegisteredAt:  time.Now(),
	}
	s.sessionRepo.Save(profile)

	s.logger.Info("student", "Session registered", map[string]interface{}{
		"session_id": profile.SessionID,
		"class":      profile.ClassLevel,
		"board":      profile.Board,
	})

	return toStudentInfo(profile), nil
}

func (s *studentService) Info(ctx context.Context, sessionID string) (*dto.StudentInfo, error) {
	profile, found := s.sessionRepo.Get(sessionID)
	if !found {
		return nil, serverutils.NewNotFoundError("session not found, register first")
	}
	return toStudentInfo(profile), nil
}

func (s *studentService) Profile(sessionID string) (*store.StudentProfile, bool) {
	return s.sessionRepo.Get(sessionID)
}

func toStudentInfo(p *store.StudentProfile) *dto.StudentInfo {
	return &dto.StudentInfo{
		SessionID:    p.SessionID,
		Class:        p.ClassLevel,
		Board:        p.Board,
		Language:     p.LanguageStyle,
		Name:         p.DisplayName,
		RegisteredAt: p.RegisteredAt,
	}
}
