package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Hassan141998/Job-Portal/internal/delivery/http/dto"
	"github.com/Hassan141998/Job-Portal/internal/delivery/http/middleware"
	"github.com/Hassan141998/Job-Portal/internal/pkg/response"
	"github.com/Hassan141998/Job-Portal/internal/usecase"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/upload", h.Upload)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", nil, err)
	}
	if fh.Filename == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid file", nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid file", nil, err)
	}
	defer f.Close()

	rec, err := h.uc.Upload(c.Context(), fh.Filename, f)
	if err != nil {
		if errors.Is(err, usecase.ErrUnsupportedFile) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid file", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := dto.ResumeUploadResponse{ResumeID: rec.ID, Analysis: rec.Analysis}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
