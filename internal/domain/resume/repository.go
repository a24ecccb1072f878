package resume

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("resume not found")

type Repository interface {
	Create(ctx context.Context, r Record) error
	GetByID(ctx context.Context, id uuid.UUID) (Record, error)
}
