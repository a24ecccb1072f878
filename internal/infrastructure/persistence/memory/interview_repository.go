package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/interview"
)

type InterviewRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]interview.Session
}

func NewInterviewRepository() *InterviewRepository {
	return &InterviewRepository{byID: make(map[uuid.UUID]interview.Session)}
}

func (r *InterviewRepository) Create(_ context.Context, s interview.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[s.ID] = s
	return nil
}

func (r *InterviewRepository) GetByID(_ context.Context, id uuid.UUID) (interview.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return interview.Session{}, interview.ErrNotFound
	}
	return s, nil
}

func (r *InterviewRepository) Complete(_ context.Context, id uuid.UUID, answers []interview.Answer, analysis interview.Analysis, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return interview.ErrNotFound
	}
	s.Answers = answers
	s.Analysis = &analysis
	s.CompletedAt = &completedAt
	r.byID[id] = s
	return nil
}
