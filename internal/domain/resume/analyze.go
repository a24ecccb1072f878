package resume

import (
	"math"
	"strings"
)

var screeningKeywords = []string{
	"python", "java", "javascript", "react", "sql", "aws", "docker",
	"leadership", "management", "communication", "agile",
}

var essentialSections = []string{
	"experience", "education", "skills", "summary", "contact",
}

// Analyze scores raw resume text against the screening keyword and section
// vocabularies. The result is a pure function of the text: the same input
// always yields the same Analysis.
func Analyze(text string) Analysis {
	lower := strings.ToLower(text)

	found := make([]string, 0, len(screeningKeywords))
	for _, k := range screeningKeywords {
		if strings.Contains(lower, k) {
			found = append(found, k)
		}
	}

	missing := make([]string, 0, len(essentialSections))
	for _, s := range essentialSections {
		if !strings.Contains(lower, s) {
			missing = append(missing, capitalize(s))
		}
	}

	keywordScore := math.Min(float64(len(found))/float64(len(screeningKeywords))*100, 100)
	sectionScore := float64(len(essentialSections)-len(missing)) / float64(len(essentialSections)) * 100

	wordCount := len(strings.Fields(text))
	lengthScore := 70.0
	if wordCount >= 300 && wordCount <= 600 {
		lengthScore = 100.0
	}

	suggestions := make([]string, 0, 3)
	if len(found) < 5 {
		suggestions = append(suggestions, "Add more industry-relevant keywords")
	}
	if wordCount < 300 {
		suggestions = append(suggestions, "Expand your resume with more details")
	}
	if !strings.Contains(lower, "summary") {
		suggestions = append(suggestions, "Add a professional summary section")
	}

	strengths := make([]string, 0, 2)
	if len(found) > 5 {
		strengths = append(strengths, "Good keyword optimization")
	}
	if len(missing) == 0 {
		strengths = append(strengths, "All essential sections present")
	}

	improvements := make([]string, 0, len(missing))
	for _, s := range missing {
		improvements = append(improvements, "Add "+s+" section")
	}

	return Analysis{
		// Truncating division, not rounding.
		ATSScore:        int((keywordScore + sectionScore) / 2),
		OverallScore:    int((keywordScore + sectionScore + lengthScore) / 3),
		Keywords:        found,
		MissingSections: missing,
		Suggestions:     suggestions,
		Strengths:       strengths,
		Improvements:    improvements,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
