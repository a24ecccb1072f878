package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/delivery/http/dto"
	"github.com/Hassan141998/Job-Portal/internal/delivery/http/middleware"
	"github.com/Hassan141998/Job-Portal/internal/domain/interview"
	"github.com/Hassan141998/Job-Portal/internal/pkg/response"
	"github.com/Hassan141998/Job-Portal/internal/usecase"
)

type InterviewHandler struct {
	uc usecase.InterviewUsecase
}

type startInterviewRequest struct {
	Type  string `json:"type"`
	Level string `json:"level"`
}

type submitInterviewRequest struct {
	InterviewID string             `json:"interview_id"`
	Answers     []interview.Answer `json:"answers"`
}

func NewInterviewHandler(uc usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("", h.Start)
	r.Post("/submit", h.Submit)
}

func (h *InterviewHandler) Start(c fiber.Ctx) error {
	var req startInterviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s, err := h.uc.Start(c.Context(), req.Type, req.Level)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := dto.InterviewStartResponse{InterviewID: s.ID, Questions: s.Questions}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *InterviewHandler) Submit(c fiber.Ctx) error {
	var req submitInterviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	// A malformed id can never name a stored session, so it reads the
	// same as an unknown one.
	id, err := uuid.Parse(req.InterviewID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Interview not found", nil, err)
	}

	analysis, err := h.uc.Submit(c.Context(), id, req.Answers)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Interview not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, analysis)
}
