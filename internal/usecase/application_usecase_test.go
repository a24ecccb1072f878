package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/application"
	"github.com/Hassan141998/Job-Portal/internal/domain/job"
)

type mockApplicationRepo struct {
	created []application.Application
	err     error
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, a)
	return nil
}

func (m *mockApplicationRepo) GetByID(context.Context, uuid.UUID) (application.Application, error) {
	return application.Application{}, application.ErrNotFound
}

type mockJobRepo struct {
	known    map[uuid.UUID]bool
	created  []job.Posting
	appended map[uuid.UUID][]uuid.UUID
}

func (m *mockJobRepo) Create(_ context.Context, p job.Posting) error {
	m.created = append(m.created, p)
	return nil
}
func (m *mockJobRepo) GetByID(context.Context, uuid.UUID) (job.Posting, error) {
	return job.Posting{}, job.ErrNotFound
}
func (m *mockJobRepo) List(context.Context) ([]job.Posting, error) { return m.created, nil }
func (m *mockJobRepo) AppendApplication(_ context.Context, jobID, applicationID uuid.UUID) error {
	if !m.known[jobID] {
		return job.ErrNotFound
	}
	if m.appended == nil {
		m.appended = make(map[uuid.UUID][]uuid.UUID)
	}
	m.appended[jobID] = append(m.appended[jobID], applicationID)
	return nil
}

type mockNotifier struct {
	events int
}

func (m *mockNotifier) ApplicationReceived(uuid.UUID, uuid.UUID) {
	m.events++
}

func TestApplicationUsecase_Apply_LinksExistingJob(t *testing.T) {
	jobID := uuid.New()
	apps := &mockApplicationRepo{}
	jobs := &mockJobRepo{known: map[uuid.UUID]bool{jobID: true}}
	notifier := &mockNotifier{}

	uc := NewApplicationUsecase(apps, jobs, notifier, nil)

	a, err := uc.Apply(context.Background(), ApplyInput{JobID: jobID, ResumeID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != application.StatusApplied {
		t.Fatalf("expected status %q, got %q", application.StatusApplied, a.Status)
	}
	if len(jobs.appended[jobID]) != 1 || jobs.appended[jobID][0] != a.ID {
		t.Fatalf("expected application linked to job, got %v", jobs.appended)
	}
	if notifier.events != 1 {
		t.Fatalf("expected 1 notification, got %d", notifier.events)
	}
}

func TestApplicationUsecase_Apply_UnknownJobStillRecords(t *testing.T) {
	apps := &mockApplicationRepo{}
	jobs := &mockJobRepo{known: map[uuid.UUID]bool{}}
	notifier := &mockNotifier{}

	uc := NewApplicationUsecase(apps, jobs, notifier, nil)

	a, err := uc.Apply(context.Background(), ApplyInput{JobID: uuid.New(), ResumeID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Fatalf("expected a fresh application id")
	}
	if len(apps.created) != 1 {
		t.Fatalf("expected application recorded, got %d", len(apps.created))
	}
	if len(jobs.appended) != 0 {
		t.Fatalf("no job list may be mutated, got %v", jobs.appended)
	}
	if notifier.events != 0 {
		t.Fatalf("expected no notification for unknown job, got %d", notifier.events)
	}
}
