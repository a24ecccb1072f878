package resume

import (
	"time"

	"github.com/google/uuid"
)

type Record struct {
	ID         uuid.UUID
	Filename   string
	Text       string
	Analysis   Analysis
	UploadedAt time.Time
}

// Analysis is the screening result cached with each uploaded resume. All
// list fields are non-nil so they serialize as empty arrays.
type Analysis struct {
	ATSScore        int      `json:"ats_score"`
	Keywords        []string `json:"keywords"`
	Suggestions     []string `json:"suggestions"`
	MissingSections []string `json:"missing_sections"`
	OverallScore    int      `json:"overall_score"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
}
