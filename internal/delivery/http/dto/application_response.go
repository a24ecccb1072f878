package dto

import "github.com/google/uuid"

type ApplyResponse struct {
	ApplicationID uuid.UUID `json:"application_id"`
}
