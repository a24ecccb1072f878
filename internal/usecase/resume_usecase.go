package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/document"
	"github.com/Hassan141998/Job-Portal/internal/domain/resume"
)

// UploadParser persists an uploaded stream and extracts its text.
type UploadParser interface {
	ParseUpload(fileID uuid.UUID, filename string, r io.Reader) (document.Parsed, error)
}

type ResumeUsecase interface {
	Upload(ctx context.Context, filename string, r io.Reader) (resume.Record, error)
}

type Resumes struct {
	parser  UploadParser
	resumes resume.Repository
	cache   AnalysisCache
	logger  *log.Logger
	now     func() time.Time
}

func NewResumeUsecase(parser UploadParser, resumes resume.Repository, cache AnalysisCache, logger *log.Logger) *Resumes {
	return &Resumes{
		parser:  parser,
		resumes: resumes,
		cache:   cache,
		logger:  logger,
		now:     time.Now,
	}
}

func (u *Resumes) Upload(ctx context.Context, filename string, r io.Reader) (resume.Record, error) {
	id := uuid.New()

	parsed, err := u.parser.ParseUpload(id, filename, r)
	if err != nil {
		if errors.Is(err, document.ErrUnsupportedType) {
			return resume.Record{}, ErrUnsupportedFile
		}
		if u.logger != nil {
			u.logger.Printf("[Resumes] Extraction failed | filename=%q err=%v", filename, err)
		}
		return resume.Record{}, ErrInternal
	}

	analysis := u.analyze(ctx, parsed.Text)

	rec := resume.Record{
		ID:         id,
		Filename:   parsed.Filename,
		Text:       parsed.Text,
		Analysis:   analysis,
		UploadedAt: u.now().UTC(),
	}
	if err := u.resumes.Create(ctx, rec); err != nil {
		return resume.Record{}, ErrInternal
	}

	if u.logger != nil {
		u.logger.Printf("[Resumes] Uploaded | resume_id=%s filename=%q ats=%d overall=%d",
			rec.ID, rec.Filename, analysis.ATSScore, analysis.OverallScore)
	}
	return rec, nil
}

func (u *Resumes) analyze(ctx context.Context, text string) resume.Analysis {
	if u.cache == nil {
		return resume.Analyze(text)
	}

	key := ResumeAnalysisCacheKey(text)

	var cached resume.Analysis
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err == nil && hit {
		if u.logger != nil {
			u.logger.Printf("[Resumes] Analysis cache HIT: %s", key)
		}
		return cached
	}

	a := resume.Analyze(text)
	_ = u.cache.SetJSON(ctx, key, a, 0)
	return a
}
