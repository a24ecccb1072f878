package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/job"
)

// JobRepository stores postings keyed by id and remembers insertion order
// so List returns postings in the order they were created.
type JobRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]job.Posting
	order []uuid.UUID
}

func NewJobRepository() *JobRepository {
	return &JobRepository{byID: make(map[uuid.UUID]job.Posting)}
}

func (r *JobRepository) Create(_ context.Context, p job.Posting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.byID[p.ID] = p
	return nil
}

func (r *JobRepository) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return job.Posting{}, job.ErrNotFound
	}
	return p, nil
}

func (r *JobRepository) List(_ context.Context) ([]job.Posting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]job.Posting, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *JobRepository) AppendApplication(_ context.Context, jobID, applicationID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[jobID]
	if !ok {
		return job.ErrNotFound
	}
	p.Applications = append(p.Applications, applicationID)
	r.byID[jobID] = p
	return nil
}
