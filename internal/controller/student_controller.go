package controller

import (
	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/serverutils"
	"ai-tutor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStudentController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Info(ctx *fiber.Ctx) error
}

type studentController struct {
	studentService service.IStudentService
}

func NewStudentController(studentService service.IStudentService) IStudentController {
	return &studentController{
		studentService: studentService,
	}
}

func (c *studentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/student")
	h.Post("/register", c.Register)
	h.Get("/info/:session_id", c.Info)
}

func (c *studentController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterStudentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewClientError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	info, err := c.studentService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.StudentInfoResponse{
		Success:     true,
		StudentInfo: info,
	})
}

func (c *studentController) Info(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	info, err := c.studentService.Info(ctx.Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.StudentInfoResponse{
		Success:     true,
		StudentInfo: info,
	})
}
