package bootstrap

import (
	"log"
	"time"

	"ai-tutor-be/internal/config"
	"ai-tutor-be/internal/controller"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/repository/memory"
	"ai-tutor-be/internal/service"
	"ai-tutor-be/pkg/demo"
	"ai-tutor-be/pkg/llm/factory"
	"ai-tutor-be/pkg/ocr/tesseract"
	"ai-tutor-be/pkg/speech"
	speechgoogle "ai-tutor-be/pkg/speech/google"
)

type Container struct {
	// Controllers
	StudentController controller.IStudentController
	QueryController   controller.IQueryController

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. External collaborators
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL(cfg),
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	if llmProvider == nil {
		log.Printf("[WARN] No chat API credential configured, running in demo mode")
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	ocrEngine := tesseract.NewEngine(cfg.Ocr.Languages, cfg.Ocr.PageSegMode)
	recognizer := speechgoogle.NewRecognizer(cfg.Keys.SpeechAPI, "")
	decoder := speech.NewFFmpegDecoder(cfg.Speech.FFmpegPath, cfg.Speech.SampleRate)

	// 3. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	studentService := service.NewStudentService(sessionRepo, sysLogger)

	tutorService := service.NewTutorService(
		llmProvider,
		demo.NewResponder(),
		cfg.LoadSystemPrompt(),
		service.TutorOptions{
			Model:       cfg.Ai.LLMModel,
			MaxTokens:   cfg.Ai.MaxTokens,
			Temperature: cfg.Ai.Temperature,
			Timeout:     time.Duration(cfg.Ai.TimeoutSeconds) * time.Second,
		},
		sysLogger,
	)

	mediaService := service.NewMediaService(
		ocrEngine,
		recognizer,
		decoder,
		service.MediaOptions{
			PrimaryLocale:   cfg.Speech.PrimaryLocale,
			SecondaryLocale: cfg.Speech.SecondaryLocale,
			SampleRate:      cfg.Speech.SampleRate,
		},
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		StudentController: controller.NewStudentController(studentService),
		QueryController:   controller.NewQueryController(studentService, mediaService, tutorService),
		Logger:            sysLogger,
	}
}

func llmBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.OpenAIBaseURL
}
