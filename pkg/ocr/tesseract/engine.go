package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"ai-tutor-be/pkg/ocr"
)

type Engine struct {
	Languages   string
	PageSegMode gosseract.PageSegMode
}

// Ensure Engine implements ocr.Engine
var _ ocr.Engine = &Engine{}

// NewEngine creates a Tesseract-backed OCR engine. pageSegMode follows the
// Tesseract PSM numbering; 6 (single uniform block) works best for
// photographed homework pages.
func NewEngine(languages string, pageSegMode int) *Engine {
	if languages == "" {
		languages = "eng"
	}
	return &Engine{
		Languages:   languages,
		PageSegMode: gosseract.PageSegMode(pageSegMode),
	}
}

func (e *Engine) Name() string {
	return "tesseract"
}

func (e *Engine) ExtractText(ctx context.Context, image []byte) (string, error) {
	prepared, err := preprocess(image)
	if err != nil {
		// Preprocessing failures (unknown format, truncated file) fall back
		// to the raw bytes; Tesseract may still handle them.
		prepared = image
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(strings.Split(e.Languages, "+")...); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := client.SetPageSegMode(e.PageSegMode); err != nil {
		return "", fmt.Errorf("set page seg mode: %w", err)
	}
	if err := client.SetImageFromBytes(prepared); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return text, nil
}
