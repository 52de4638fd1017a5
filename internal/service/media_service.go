package service

import (
	"context"
	"errors"
	"strings"

	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/pkg/serverutils"
	"ai-tutor-be/pkg/ocr"
	"ai-tutor-be/pkg/speech"
)

// IMediaService normalizes an uploaded image or audio clip to plain text.
// Failures it returns are recoverable media errors meant for the student
// ("upload a clearer image"), not internal faults.
type IMediaService interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
	Transcribe(ctx context.Context, audio []byte, mimeHint string) (string, error)
}

type MediaOptions struct {
	PrimaryLocale   string
	SecondaryLocale string
	SampleRate      int
}

type mediaService struct {
	ocrEngine  ocr.Engine
	recognizer speech.Recognizer
	decoder    speech.Decoder
	opts       MediaOptions
	logger     logger.ILogger
}

func NewMediaService(
	ocrEngine ocr.Engine,
	recognizer speech.Recognizer,
	decoder speech.Decoder,
	opts MediaOptions,
	log logger.ILogger,
) IMediaService {
	if opts.PrimaryLocale == "" {
		opts.PrimaryLocale = "en-IN"
	}
	if opts.SecondaryLocale == "" {
		opts.SecondaryLocale = "hi-IN"
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 16000
	}
	return &mediaService{
		ocrEngine:  ocrEngine,
		recognizer: recognizer,
		decoder:    decoder,
		opts:       opts,
		logger:     log,
	}
}

func (s *mediaService) ExtractText(ctx context.Context, image []byte) (string, error) {
	text, err := s.ocrEngine.ExtractText(ctx, image)
	if err != nil {
		s.logger.Error("media", "OCR failed", map[string]interface{}{
			"engine": s.ocrEngine.Name(),
			"error":  err.Error(),
		})
		return "", serverutils.NewMediaError("could not read the image, please upload a clearer photo of the question")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", serverutils.NewMediaError("no text found in the image, please upload a clearer photo of the question")
	}
	return text, nil
}

// Transcribe decodes the clip once, then walks a fixed strategy chain:
// primary locale, secondary locale, engine default. "Not understood" moves to
// the next strategy; a service failure stops the chain immediately so the
// request path never hammers an unreachable service.
func (s *mediaService) Transcribe(ctx context.Context, audio []byte, mimeHint string) (string, error) {
	flac, err := s.decoder.ToFLAC(ctx, audio, mimeHint)
	if err != nil {
		s.logger.Error("media", "Audio decode failed", map[string]interface{}{
			"mime":  mimeHint,
			"error": err.Error(),
		})
		return "", serverutils.NewMediaError("could not decode the audio, please record again")
	}

	locales := []string{s.opts.PrimaryLocale, s.opts.SecondaryLocale, ""}
	for _, locale := range locales {
		text, err := s.recognizer.Transcribe(ctx, flac, s.opts.SampleRate, locale)
		if err == nil {
			return strings.TrimSpace(text), nil
		}
		if errors.Is(err, speech.ErrNotUnderstood) {
			s.logger.Debug("media", "Speech not understood, trying next locale", map[string]interface{}{
				"engine": s.recognizer.Name(),
				"locale": locale,
			})
			continue
		}
		s.logger.Error("media", "Speech service failed", map[string]interface{}{
			"engine": s.recognizer.Name(),
			"locale": locale,
			"error":  err.Error(),
		})
		return "", serverutils.NewMediaError("the speech service is unavailable right now, please try again later")
	}

	return "", serverutils.NewMediaError("could not understand the audio, please speak clearly and retry")
}
