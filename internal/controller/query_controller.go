package controller

import (
	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/serverutils"
	"ai-tutor-be/internal/service"
	"ai-tutor-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router)
	Text(ctx *fiber.Ctx) error
	Image(ctx *fiber.Ctx) error
	Voice(ctx *fiber.Ctx) error
}

type queryController struct {
	studentService service.IStudentService
	mediaService   service.IMediaService
	tutorService   service.ITutorService
}

func NewQueryController(
	studentService service.IStudentService,
	mediaService service.IMediaService,
	tutorService service.ITutorService,
) IQueryController {
	return &queryController{
		studentService: studentService,
		mediaService:   mediaService,
		tutorService:   tutorService,
	}
}

func (c *queryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/query")
	h.Post("/text", c.Text)
	h.Post("/image", c.Image)
	h.Post("/voice", c.Voice)
}

// requireProfile enforces the session invariant: queries for unregistered
// sessions are rejected before any media or LLM work starts.
func (c *queryController) requireProfile(sessionID string) (*store.StudentProfile, error) {
	profile, found := c.studentService.Profile(sessionID)
	if !found {
		return nil, serverutils.NewClientError("unknown session_id, register the student first")
	}
	return profile, nil
}

func (c *queryController) Text(ctx *fiber.Ctx) error {
	var req dto.TextQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewClientError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	profile, err := c.requireProfile(req.SessionID)
	if err != nil {
		return err
	}

	result := c.tutorService.Answer(ctx.Context(), req.Query, profile)
	return ctx.JSON(result)
}

func (c *queryController) Image(ctx *fiber.Ctx) error {
	var req dto.ImageQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewClientError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	profile, err := c.requireProfile(req.SessionID)
	if err != nil {
		return err
	}

	_, imageBytes, err := serverutils.DecodeDataURI(req.ImageData)
	if err != nil {
		return err
	}

	question, err := c.mediaService.ExtractText(ctx.Context(), imageBytes)
	if err != nil {
		return err
	}

	result := c.tutorService.Answer(ctx.Context(), question, profile)
	result.ExtractedText = question
	return ctx.JSON(result)
}

func (c *queryController) Voice(ctx *fiber.Ctx) error {
	var req dto.VoiceQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewClientError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	profile, err := c.requireProfile(req.SessionID)
	if err != nil {
		return err
	}

	mimeType, audioBytes, err := serverutils.DecodeDataURI(req.AudioData)
	if err != nil {
		return err
	}

	question, err := c.mediaService.Transcribe(ctx.Context(), audioBytes, mimeType)
	if err != nil {
		return err
	}

	result := c.tutorService.Answer(ctx.Context(), question, profile)
	result.TranscribedText = question
	return ctx.JSON(result)
}
