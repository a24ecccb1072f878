package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/interview"
)

type InterviewUsecase interface {
	Start(ctx context.Context, interviewType, level string) (interview.Session, error)
	Submit(ctx context.Context, id uuid.UUID, answers []interview.Answer) (interview.Analysis, error)
}

type Interviews struct {
	interviews interview.Repository
	logger     *log.Logger
	now        func() time.Time
}

func NewInterviewUsecase(interviews interview.Repository, logger *log.Logger) *Interviews {
	return &Interviews{interviews: interviews, logger: logger, now: time.Now}
}

// Start opens a session for the requested type and level. Unknown pairs
// still open a session, just with an empty question list.
func (u *Interviews) Start(ctx context.Context, interviewType, level string) (interview.Session, error) {
	interviewType = strings.TrimSpace(interviewType)
	if interviewType == "" {
		interviewType = interview.TypeTechnical
	}
	level = strings.TrimSpace(level)
	if level == "" {
		level = interview.LevelMid
	}

	s := interview.Session{
		ID:        uuid.New(),
		Type:      interviewType,
		Level:     level,
		Questions: interview.Questions(interviewType, level),
		Answers:   []interview.Answer{},
		StartedAt: u.now().UTC(),
	}

	if err := u.interviews.Create(ctx, s); err != nil {
		return interview.Session{}, ErrInternal
	}

	if u.logger != nil {
		u.logger.Printf("[Interviews] Started | interview_id=%s type=%s level=%s questions=%d",
			s.ID, s.Type, s.Level, len(s.Questions))
	}
	return s, nil
}

func (u *Interviews) Submit(ctx context.Context, id uuid.UUID, answers []interview.Answer) (interview.Analysis, error) {
	if _, err := u.interviews.GetByID(ctx, id); err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			return interview.Analysis{}, ErrNotFound
		}
		return interview.Analysis{}, ErrInternal
	}

	if answers == nil {
		answers = []interview.Answer{}
	}
	analysis := interview.AnalyzeAnswers(answers)

	if err := u.interviews.Complete(ctx, id, answers, analysis, u.now().UTC()); err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			return interview.Analysis{}, ErrNotFound
		}
		return interview.Analysis{}, ErrInternal
	}

	return analysis, nil
}
