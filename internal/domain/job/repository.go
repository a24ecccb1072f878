package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, p Posting) error
	GetByID(ctx context.Context, id uuid.UUID) (Posting, error)

	// List returns every posting in insertion order.
	List(ctx context.Context) ([]Posting, error)

	// AppendApplication links an application id to an existing posting.
	// Returns ErrNotFound when the posting does not exist.
	AppendApplication(ctx context.Context, jobID, applicationID uuid.UUID) error
}
