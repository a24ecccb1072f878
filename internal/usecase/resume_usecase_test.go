package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/document"
	"github.com/Hassan141998/Job-Portal/internal/domain/resume"
)

type stubParser struct {
	text string
	err  error
}

func (s *stubParser) ParseUpload(_ uuid.UUID, filename string, r io.Reader) (document.Parsed, error) {
	if s.err != nil {
		return document.Parsed{}, s.err
	}
	_, _ = io.Copy(io.Discard, r)
	return document.Parsed{Filename: filename, Text: s.text}, nil
}

type mockResumeRepo struct {
	records map[uuid.UUID]resume.Record
}

func (m *mockResumeRepo) Create(_ context.Context, r resume.Record) error {
	if m.records == nil {
		m.records = make(map[uuid.UUID]resume.Record)
	}
	m.records[r.ID] = r
	return nil
}

func (m *mockResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Record, error) {
	r, ok := m.records[id]
	if !ok {
		return resume.Record{}, resume.ErrNotFound
	}
	return r, nil
}

// mapCache is an in-process AnalysisCache storing marshaled JSON, the
// same shape the Redis-backed cache keeps.
type mapCache struct {
	entries map[string][]byte
	hits    int
	sets    int
}

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if c.entries == nil {
		c.entries = make(map[string][]byte)
	}
	c.entries[key] = b
	c.sets++
	return nil
}

func TestResumeUsecase_Upload_AnalyzesAndStores(t *testing.T) {
	parser := &stubParser{text: "python experience skills"}
	repo := &mockResumeRepo{}
	uc := NewResumeUsecase(parser, repo, nil, nil)

	rec, err := uc.Upload(context.Background(), "cv.pdf", strings.NewReader("%PDF"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.Filename != "cv.pdf" {
		t.Fatalf("expected filename kept, got %q", rec.Filename)
	}
	if want := resume.Analyze(parser.text); !reflect.DeepEqual(rec.Analysis, want) {
		t.Fatalf("analysis mismatch:\n got %+v\nwant %+v", rec.Analysis, want)
	}
	if _, ok := repo.records[rec.ID]; !ok {
		t.Fatalf("record was not persisted")
	}
}

func TestResumeUsecase_Upload_UnsupportedType(t *testing.T) {
	parser := &stubParser{err: document.ErrUnsupportedType}
	uc := NewResumeUsecase(parser, &mockResumeRepo{}, nil, nil)

	_, err := uc.Upload(context.Background(), "cv.txt", strings.NewReader("plain"))
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestResumeUsecase_Upload_ExtractionFailure(t *testing.T) {
	parser := &stubParser{err: errors.New("truncated stream")}
	uc := NewResumeUsecase(parser, &mockResumeRepo{}, nil, nil)

	_, err := uc.Upload(context.Background(), "cv.pdf", strings.NewReader("%PDF"))
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestResumeUsecase_Upload_IdenticalTextSharesCachedAnalysis(t *testing.T) {
	parser := &stubParser{text: "python sql experience education skills summary contact"}
	repo := &mockResumeRepo{}
	cache := &mapCache{}
	uc := NewResumeUsecase(parser, repo, cache, nil)

	first, err := uc.Upload(context.Background(), "a.pdf", strings.NewReader("%PDF"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.Upload(context.Background(), "b.pdf", strings.NewReader("%PDF"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("each upload must get its own id")
	}
	if !reflect.DeepEqual(first.Analysis, second.Analysis) {
		t.Fatalf("analysis mismatch between identical uploads")
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache store, got %d", cache.sets)
	}
	if cache.hits != 1 {
		t.Fatalf("expected second upload to hit the cache, got %d hits", cache.hits)
	}
}
