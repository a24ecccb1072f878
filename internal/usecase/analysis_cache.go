package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// AnalysisCache memoizes resume analysis results. Implementations may be
// unavailable, in which case lookups miss and stores are dropped.
type AnalysisCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// ResumeAnalysisCacheKey derives the cache key from the extracted text.
// Analysis is a pure function of the text, so identical uploads share a
// key and an identical cached value.
func ResumeAnalysisCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "resume:analysis:" + hex.EncodeToString(sum[:])
}
