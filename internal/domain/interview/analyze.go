package interview

import "strings"

// AnalyzeAnswers bands each answer by word count and blends the bands into
// the session scores. An empty answer list leaves every score at zero.
func AnalyzeAnswers(answers []Answer) Analysis {
	a := Analysis{
		Feedback:     make([]string, 0, 1),
		Strengths:    make([]string, 0, 1),
		Improvements: make([]string, 0, 1),
	}

	total := 0
	for _, ans := range answers {
		wordCount := len(strings.Fields(ans.Answer))

		switch {
		case wordCount > 50:
			total += 85
		case wordCount > 30:
			total += 70
		default:
			total += 50
		}
	}

	if len(answers) > 0 {
		a.OverallScore = total / len(answers)
		a.CommunicationScore = capScore(a.OverallScore + 5)
		a.TechnicalScore = a.OverallScore
		a.ConfidenceScore = capScore(a.OverallScore + 3)
	}

	// Strict comparisons: scores in [70, 80] get neither entry.
	if a.OverallScore > 80 {
		a.Strengths = append(a.Strengths, "Excellent detailed responses")
	}
	if a.OverallScore < 70 {
		a.Improvements = append(a.Improvements, "Provide more detailed answers")
	}

	return a
}

func capScore(v int) int {
	if v > 100 {
		return 100
	}
	return v
}
