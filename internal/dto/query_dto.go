package dto

import "time"

type TextQueryRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Query     string `json:"query" validate:"required"`
}

type ImageQueryRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	ImageData string `json:"image_data" validate:"required"` // base64 data URI
}

type VoiceQueryRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	AudioData string `json:"audio_data" validate:"required"` // base64 data URI
}

// AnswerResult is the response of every query endpoint. Note is set whenever
// a fallback path (demo responder) produced the answer.
type AnswerResult struct {
	Success         bool      `json:"success"`
	Response        string    `json:"response,omitempty"`
	Error           string    `json:"error,omitempty"`
	ExtractedText   string    `json:"extracted_text,omitempty"`
	TranscribedText string    `json:"transcribed_text,omitempty"`
	Note            string    `json:"note,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}
