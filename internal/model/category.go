package model

// The eight competency categories every interview is scored against. The slice
// order is the canonical iteration order; tie-breaks on aggregates resolve to
// the first entry encountered in this order.
const (
	CategoryCommunication      = "communication"
	CategoryProblemSolving     = "problem_solving"
	CategoryLeadership         = "leadership"
	CategoryTeamwork           = "teamwork"
	CategoryTechnicalKnowledge = "technical_knowledge"
	CategoryAdaptability       = "adaptability"
	CategoryCreativity         = "creativity"
	CategoryCriticalThinking   = "critical_thinking"
)

var Categories = []string{
	CategoryCommunication,
	CategoryProblemSolving,
	CategoryLeadership,
	CategoryTeamwork,
	CategoryTechnicalKnowledge,
	CategoryAdaptability,
	CategoryCreativity,
	CategoryCriticalThinking,
}

// CategoryScores maps category keys to 0-100 scores.
type CategoryScores map[string]float64

// Complete reports whether every one of the eight categories is present.
func (s CategoryScores) Complete() bool {
	for _, c := range Categories {
		if _, ok := s[c]; !ok {
			return false
		}
	}
	return true
}

// IsCategory reports whether key is one of the eight fixed tags.
func IsCategory(key string) bool {
	for _, c := range Categories {
		if c == key {
			return true
		}
	}
	return false
}
