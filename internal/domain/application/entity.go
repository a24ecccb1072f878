package application

import (
	"time"

	"github.com/google/uuid"
)

// StatusApplied is the only status an application ever holds; there is no
// transition logic downstream of it.
const StatusApplied = "applied"

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	ApplicantID *uuid.UUID
	ResumeID    uuid.UUID
	Status      string
	AppliedAt   time.Time
}
