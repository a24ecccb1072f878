package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/job"
)

type PostJobInput struct {
	Title          string
	Company        string
	Location       string
	EmploymentType string
	Salary         string
	Description    string
	Requirements   []string
	PostedBy       *uuid.UUID
}

type JobUsecase interface {
	Post(ctx context.Context, in PostJobInput) (job.Posting, error)
	List(ctx context.Context) ([]job.Posting, error)
}

type Jobs struct {
	jobs   job.Repository
	logger *log.Logger
	now    func() time.Time
}

func NewJobUsecase(jobs job.Repository, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, logger: logger, now: time.Now}
}

func (u *Jobs) Post(ctx context.Context, in PostJobInput) (job.Posting, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Posting{}, ErrInvalidInput
	}

	employmentType := strings.TrimSpace(in.EmploymentType)
	if employmentType == "" {
		employmentType = job.DefaultEmploymentType
	}

	requirements := in.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	p := job.Posting{
		ID:             uuid.New(),
		Title:          title,
		Company:        strings.TrimSpace(in.Company),
		Location:       strings.TrimSpace(in.Location),
		EmploymentType: employmentType,
		Salary:         strings.TrimSpace(in.Salary),
		Description:    in.Description,
		Requirements:   requirements,
		PostedBy:       in.PostedBy,
		PostedAt:       u.now().UTC(),
		Applications:   []uuid.UUID{},
	}

	if err := u.jobs.Create(ctx, p); err != nil {
		return job.Posting{}, ErrInternal
	}

	if u.logger != nil {
		u.logger.Printf("[Jobs] Posted | job_id=%s title=%q", p.ID, p.Title)
	}
	return p, nil
}

func (u *Jobs) List(ctx context.Context) ([]job.Posting, error) {
	items, err := u.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
