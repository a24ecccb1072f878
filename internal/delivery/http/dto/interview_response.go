package dto

import "github.com/google/uuid"

type InterviewStartResponse struct {
	InterviewID uuid.UUID `json:"interview_id"`
	Questions   []string  `json:"questions"`
}
