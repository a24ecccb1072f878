package job

import (
	"time"

	"github.com/google/uuid"
)

const DefaultEmploymentType = "Full-time"

type Posting struct {
	ID             uuid.UUID
	Title          string
	Company        string
	Location       string
	EmploymentType string
	Salary         string
	Description    string
	Requirements   []string
	PostedBy       *uuid.UUID
	PostedAt       time.Time
	Applications   []uuid.UUID
}
