package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Keys   APIKeys
	Ai     AIConfig
	Ocr    OCRConfig
	Speech SpeechConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	SystemPromptPath   string
}

type APIKeys struct {
	OpenAI    string
	SpeechAPI string
}

type AIConfig struct {
	LLMProvider    string // "openai", "ollama"
	LLMModel       string // e.g. "gpt-4o", "llama3"
	OpenAIBaseURL  string
	OllamaBaseURL  string
	MaxTokens      int
	Temperature    float64
	TimeoutSeconds int
}

type OCRConfig struct {
	Languages   string // tesseract language codes, "+"-joined
	PageSegMode int
}

type SpeechConfig struct {
	PrimaryLocale   string
	SecondaryLocale string
	SampleRate      int
	FFmpegPath      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			SystemPromptPath:   getEnv("SYSTEM_PROMPT_PATH", "config/prompt.txt"),
		},
		Keys: APIKeys{
			OpenAI:    getEnv("OPENAI_API_KEY", ""),
			SpeechAPI: getEnv("SPEECH_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "openai"),
			LLMModel:       getEnv("LLM_MODEL", "gpt-4o"),
			OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", ""),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			MaxTokens:      getEnvAsInt("LLM_MAX_TOKENS", 1024),
			Temperature:    getEnvAsFloat("LLM_TEMPERATURE", 0.7),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 45),
		},
		Ocr: OCRConfig{
			Languages:   getEnv("OCR_LANGUAGES", "eng"),
			PageSegMode: getEnvAsInt("OCR_PAGE_SEG_MODE", 6),
		},
		Speech: SpeechConfig{
			PrimaryLocale:   getEnv("SPEECH_PRIMARY_LOCALE", "en-IN"),
			SecondaryLocale: getEnv("SPEECH_SECONDARY_LOCALE", "hi-IN"),
			SampleRate:      getEnvAsInt("SPEECH_SAMPLE_RATE", 16000),
			FFmpegPath:      getEnv("FFMPEG_PATH", "ffmpeg"),
		},
	}
}

// LoadSystemPrompt reads the tutoring persona prompt once at startup.
// Returns "" when the file is missing; the tutor service then uses the
// built-in default.
func (c *Config) LoadSystemPrompt() string {
	data, err := os.ReadFile(c.App.SystemPromptPath)
	if err != nil {
		log.Printf("Note: system prompt file not found at %s, using built-in default", c.App.SystemPromptPath)
		return ""
	}
	return string(data)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
