package interview

const (
	TypeTechnical  = "technical"
	TypeBehavioral = "behavioral"

	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

var questionBank = map[string]map[string][]string{
	TypeTechnical: {
		LevelEntry: {
			"Explain the difference between var, let, and const in JavaScript.",
			"What is the box model in CSS?",
			"Describe the concept of Object-Oriented Programming.",
		},
		LevelMid: {
			"How would you optimize a slow database query?",
			"Explain the concept of closures in JavaScript.",
			"What are design patterns? Give examples.",
		},
		LevelSenior: {
			"Design a scalable microservices architecture.",
			"How would you handle system failure in a distributed system?",
			"Explain your approach to technical leadership.",
		},
	},
	TypeBehavioral: {
		LevelEntry: {
			"Tell me about a time you worked in a team.",
			"Describe a challenging project you completed.",
			"How do you handle constructive criticism?",
		},
		LevelMid: {
			"Tell me about a time you had to meet a tight deadline.",
			"Describe a situation where you had to resolve a conflict.",
			"How do you prioritize multiple tasks?",
		},
		LevelSenior: {
			"Describe your leadership style.",
			"Tell me about a time you mentored someone.",
			"How do you handle underperforming team members?",
		},
	},
}

// Questions returns the fixed question list for a (type, level) pair.
// Unknown pairs yield an empty list rather than an error; the lookup is
// deliberately permissive.
func Questions(interviewType, level string) []string {
	byLevel, ok := questionBank[interviewType]
	if !ok {
		return []string{}
	}
	qs, ok := byLevel[level]
	if !ok {
		return []string{}
	}
	out := make([]string, len(qs))
	copy(out, qs)
	return out
}
