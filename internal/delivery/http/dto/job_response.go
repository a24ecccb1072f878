package dto

import "github.com/google/uuid"

type PostJobResponse struct {
	JobID uuid.UUID `json:"job_id"`
}

type JobResponse struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Company      string      `json:"company"`
	Location     string      `json:"location"`
	Type         string      `json:"type"`
	Salary       string      `json:"salary"`
	Description  string      `json:"description"`
	Requirements []string    `json:"requirements"`
	PostedBy     *uuid.UUID  `json:"posted_by"`
	PostedAt     string      `json:"posted_at"`
	Applications []uuid.UUID `json:"applications"`
}
