package dto

import (
	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/resume"
)

type ResumeUploadResponse struct {
	ResumeID uuid.UUID       `json:"resume_id"`
	Analysis resume.Analysis `json:"analysis"`
}
