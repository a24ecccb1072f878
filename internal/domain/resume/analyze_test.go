package resume

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyze_NoKeywordsNoSections(t *testing.T) {
	a := Analyze("lorem ipsum dolor sit amet")

	if len(a.Keywords) != 0 {
		t.Fatalf("expected no keywords, got %v", a.Keywords)
	}
	want := []string{"Experience", "Education", "Skills", "Summary", "Contact"}
	if !reflect.DeepEqual(a.MissingSections, want) {
		t.Fatalf("expected missing sections %v, got %v", want, a.MissingSections)
	}
	if a.ATSScore != 0 {
		t.Fatalf("expected ats_score=0, got %d", a.ATSScore)
	}
	// keyword 0 + section 0 + length 70, truncated thirds.
	if a.OverallScore != 23 {
		t.Fatalf("expected overall_score=23, got %d", a.OverallScore)
	}
	if len(a.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %v", a.Suggestions)
	}
	if len(a.Strengths) != 0 {
		t.Fatalf("expected no strengths, got %v", a.Strengths)
	}
	if len(a.Improvements) != 5 {
		t.Fatalf("expected 5 improvements, got %v", a.Improvements)
	}
	if a.Improvements[0] != "Add Experience section" {
		t.Fatalf("unexpected first improvement: %q", a.Improvements[0])
	}
}

func TestAnalyze_PerfectResume(t *testing.T) {
	parts := []string{
		"python", "java", "javascript", "react", "sql", "aws", "docker",
		"leadership", "management", "communication", "agile",
		"experience", "education", "skills", "summary", "contact",
	}
	text := strings.Join(parts, " ") + " " + strings.TrimSpace(strings.Repeat("detail ", 300))

	a := Analyze(text)

	if a.ATSScore != 100 {
		t.Fatalf("expected ats_score=100, got %d", a.ATSScore)
	}
	if a.OverallScore != 100 {
		t.Fatalf("expected overall_score=100, got %d", a.OverallScore)
	}
	if len(a.Keywords) != 11 {
		t.Fatalf("expected all 11 keywords, got %v", a.Keywords)
	}
	if a.Keywords[0] != "python" || a.Keywords[10] != "agile" {
		t.Fatalf("keywords not in vocabulary order: %v", a.Keywords)
	}
	if len(a.MissingSections) != 0 {
		t.Fatalf("expected no missing sections, got %v", a.MissingSections)
	}
	if len(a.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", a.Suggestions)
	}
	found := false
	for _, s := range a.Strengths {
		if s == "All essential sections present" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected section strength, got %v", a.Strengths)
	}
}

func TestAnalyze_PartialCoverage(t *testing.T) {
	a := Analyze("python sql experience education skills summary contact")

	if !reflect.DeepEqual(a.Keywords, []string{"python", "sql"}) {
		t.Fatalf("unexpected keywords: %v", a.Keywords)
	}
	// keyword 2/11*100 = 18.18, section 100, length 70.
	if a.ATSScore != 59 {
		t.Fatalf("expected ats_score=59, got %d", a.ATSScore)
	}
	if a.OverallScore != 62 {
		t.Fatalf("expected overall_score=62, got %d", a.OverallScore)
	}
	// Summary is present, so only the keyword and length suggestions fire.
	if len(a.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %v", a.Suggestions)
	}
}

func TestAnalyze_ScoresBounded(t *testing.T) {
	inputs := []string{
		"",
		"python",
		strings.Repeat("word ", 1000),
		"experience education skills summary contact",
	}
	for _, in := range inputs {
		a := Analyze(in)
		if a.ATSScore < 0 || a.ATSScore > 100 {
			t.Fatalf("ats_score out of range for %q: %d", in, a.ATSScore)
		}
		if a.OverallScore < 0 || a.OverallScore > 100 {
			t.Fatalf("overall_score out of range for %q: %d", in, a.OverallScore)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "python developer with experience in sql and aws education skills"
	if !reflect.DeepEqual(Analyze(text), Analyze(text)) {
		t.Fatalf("analysis not deterministic for identical input")
	}
}

func TestAnalyze_EmptyListsSerializable(t *testing.T) {
	a := Analyze("")
	if a.Keywords == nil || a.Suggestions == nil || a.Strengths == nil || a.Improvements == nil {
		t.Fatalf("list fields must be non-nil: %+v", a)
	}
}
