package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Hassan141998/Job-Portal/internal/domain/job"
)

func TestJobUsecase_Post_RequiresTitle(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{}, nil)

	_, err := uc.Post(context.Background(), PostJobInput{Title: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_Post_Defaults(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobUsecase(repo, nil)

	p, err := uc.Post(context.Background(), PostJobInput{Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.EmploymentType != job.DefaultEmploymentType {
		t.Fatalf("expected %q, got %q", job.DefaultEmploymentType, p.EmploymentType)
	}
	if p.Requirements == nil {
		t.Fatalf("requirements must be non-nil")
	}
	if p.Applications == nil || len(p.Applications) != 0 {
		t.Fatalf("applications must start empty, got %#v", p.Applications)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected posting persisted, got %d", len(repo.created))
	}
}

func TestJobUsecase_Post_KeepsProvidedType(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{}, nil)

	p, err := uc.Post(context.Background(), PostJobInput{Title: "Contract QA", EmploymentType: "Contract"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.EmploymentType != "Contract" {
		t.Fatalf("expected Contract, got %q", p.EmploymentType)
	}
}
