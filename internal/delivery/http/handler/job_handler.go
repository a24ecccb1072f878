package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/delivery/http/dto"
	"github.com/Hassan141998/Job-Portal/internal/delivery/http/middleware"
	"github.com/Hassan141998/Job-Portal/internal/pkg/response"
	"github.com/Hassan141998/Job-Portal/internal/usecase"
)

type JobHandler struct {
	jobs         usecase.JobUsecase
	applications usecase.ApplicationUsecase
}

type postJobRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

type applyRequest struct {
	JobID    string `json:"job_id"`
	ResumeID string `json:"resume_id"`
}

func NewJobHandler(jobs usecase.JobUsecase, applications usecase.ApplicationUsecase) *JobHandler {
	return &JobHandler{jobs: jobs, applications: applications}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("", h.List)
	r.Post("", h.Post)
	r.Post("/apply", h.Apply)
}

func (h *JobHandler) Post(c fiber.Ctx) error {
	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.jobs.Post(c.Context(), usecase.PostJobInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		EmploymentType: req.Type,
		Salary:         req.Salary,
		Description:    req.Description,
		Requirements:   req.Requirements,
		PostedBy:       middleware.AccountIDFromLocals(c),
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PostJobResponse{JobID: p.ID})
}

func (h *JobHandler) List(c fiber.Ctx) error {
	items, err := h.jobs.List(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.JobResponse{
			ID:           it.ID,
			Title:        it.Title,
			Company:      it.Company,
			Location:     it.Location,
			Type:         it.EmploymentType,
			Salary:       it.Salary,
			Description:  it.Description,
			Requirements: it.Requirements,
			PostedBy:     it.PostedBy,
			PostedAt:     it.PostedAt.UTC().Format(time.RFC3339),
			Applications: it.Applications,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobHandler) Apply(c fiber.Ctx) error {
	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}
	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	a, err := h.applications.Apply(c.Context(), usecase.ApplyInput{
		JobID:       jobID,
		ResumeID:    resumeID,
		ApplicantID: middleware.AccountIDFromLocals(c),
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ApplyResponse{ApplicationID: a.ID})
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
