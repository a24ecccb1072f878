package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/resume"
)

type ResumeRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]resume.Record
}

func NewResumeRepository() *ResumeRepository {
	return &ResumeRepository{byID: make(map[uuid.UUID]resume.Record)}
}

func (r *ResumeRepository) Create(_ context.Context, rec resume.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[rec.ID] = rec
	return nil
}

func (r *ResumeRepository) GetByID(_ context.Context, id uuid.UUID) (resume.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return resume.Record{}, resume.ErrNotFound
	}
	return rec, nil
}
