package careers

// Match scores are documented as 70-99. Both the generative and deterministic
// paths clamp into that range.
const (
	minMatchScore = 70
	maxMatchScore = 99
)

// Recommendation is one entry-level career suggestion. Request-scoped and
// immutable once returned.
type Recommendation struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SalaryRange     string   `json:"salaryRange"`
	MatchScore      int      `json:"matchScore"`
	RequiredSkills  []string `json:"requiredSkills"`
	GrowthPotential string   `json:"growthPotential"`
}

func clampMatchScore(score int) int {
	if score < minMatchScore {
		return minMatchScore
	}
	if score > maxMatchScore {
		return maxMatchScore
	}
	return score
}
