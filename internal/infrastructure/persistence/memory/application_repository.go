package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/application"
)

type ApplicationRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]application.Application
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{byID: make(map[uuid.UUID]application.Application)}
}

func (r *ApplicationRepository) Create(_ context.Context, a application.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[a.ID] = a
	return nil
}

func (r *ApplicationRepository) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}
