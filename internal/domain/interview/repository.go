package interview

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("interview not found")

type Repository interface {
	Create(ctx context.Context, s Session) error
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)

	// Complete records the submitted answers, their analysis, and the
	// completion time as one transition. Returns ErrNotFound for an
	// unknown session id.
	Complete(ctx context.Context, id uuid.UUID, answers []Answer, analysis Analysis, completedAt time.Time) error
}
