package account

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeJobSeeker = "jobseeker"
	TypeEmployer  = "employer"
)

type Account struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	UserType     string
	CreatedAt    time.Time
}

func ValidType(userType string) bool {
	return userType == TypeJobSeeker || userType == TypeEmployer
}
