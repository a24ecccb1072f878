package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/application"
	"github.com/Hassan141998/Job-Portal/internal/domain/job"
)

// ApplicationNotifier fans an accepted application out to connected
// websocket clients. Implementations must not block.
type ApplicationNotifier interface {
	ApplicationReceived(jobID, applicationID uuid.UUID)
}

type ApplyInput struct {
	JobID       uuid.UUID
	ResumeID    uuid.UUID
	ApplicantID *uuid.UUID
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, in ApplyInput) (application.Application, error)
}

type Applications struct {
	applications application.Repository
	jobs         job.Repository
	notifier     ApplicationNotifier
	logger       *log.Logger
	now          func() time.Time
}

func NewApplicationUsecase(applications application.Repository, jobs job.Repository, notifier ApplicationNotifier, logger *log.Logger) *Applications {
	return &Applications{
		applications: applications,
		jobs:         jobs,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

// Apply always records the application and returns its id. Linking it to
// the posting only happens when the posting exists; an unknown job id is
// not an error.
func (u *Applications) Apply(ctx context.Context, in ApplyInput) (application.Application, error) {
	a := application.Application{
		ID:          uuid.New(),
		JobID:       in.JobID,
		ApplicantID: in.ApplicantID,
		ResumeID:    in.ResumeID,
		Status:      application.StatusApplied,
		AppliedAt:   u.now().UTC(),
	}

	if err := u.applications.Create(ctx, a); err != nil {
		return application.Application{}, ErrInternal
	}

	if err := u.jobs.AppendApplication(ctx, in.JobID, a.ID); err != nil {
		if !errors.Is(err, job.ErrNotFound) {
			return application.Application{}, ErrInternal
		}
		if u.logger != nil {
			u.logger.Printf("[Applications] Unknown job, linkage skipped | job_id=%s application_id=%s", in.JobID, a.ID)
		}
		return a, nil
	}

	if u.notifier != nil {
		u.notifier.ApplicationReceived(in.JobID, a.ID)
	}
	return a, nil
}
