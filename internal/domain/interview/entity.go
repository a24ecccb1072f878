package interview

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer"`
}

type Analysis struct {
	OverallScore       int      `json:"overall_score"`
	CommunicationScore int      `json:"communication_score"`
	TechnicalScore     int      `json:"technical_score"`
	ConfidenceScore    int      `json:"confidence_score"`
	Feedback           []string `json:"feedback"`
	Strengths          []string `json:"strengths"`
	Improvements       []string `json:"improvements"`
}

// Session is a single mock-interview cycle. It mutates exactly once:
// Complete sets Answers, Analysis and CompletedAt together.
type Session struct {
	ID          uuid.UUID
	Type        string
	Level       string
	Questions   []string
	Answers     []Answer
	Analysis    *Analysis
	StartedAt   time.Time
	CompletedAt *time.Time
}
