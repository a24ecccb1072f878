package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("application not found")

type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
}
