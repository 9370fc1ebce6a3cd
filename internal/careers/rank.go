package careers

import (
	"sort"
	"strings"
)

const maxRecommendations = 10

// activityAffinities maps a liked activity to title keywords that earn a
// fixed +5 bonus each.
var activityAffinities = map[string][]string{
	"Building things":  {"Developer"},
	"Helping people":   {"Manager", "Designer"},
	"Solving problems": {"Analyst", "Developer"},
}

// Rank scores the fixed template set against user preferences and returns up
// to 10 recommendations, descending by match score. It is a pure function:
// identical input always yields identically ordered output. The desired
// salary is part of the caller contract but does not influence scoring; the
// template salary ranges are informational.
func Rank(salary float64, activities, userSkills []string) []Recommendation {
	_ = salary

	scored := make([]Recommendation, len(careerTemplates))
	copy(scored, careerTemplates)

	for i := range scored {
		score := scored[i].MatchScore
		score += 2 * matchingSkillCount(scored[i].RequiredSkills, userSkills)
		score += activityBonus(scored[i].Title, activities)
		if score > maxMatchScore {
			score = maxMatchScore
		}
		scored[i].MatchScore = score
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	return scored
}

func matchingSkillCount(required, userSkills []string) int {
	count := 0
	for _, skill := range required {
		lowered := strings.ToLower(skill)
		for _, userSkill := range userSkills {
			if strings.Contains(strings.ToLower(userSkill), lowered) {
				count++
				break
			}
		}
	}
	return count
}

func activityBonus(title string, activities []string) int {
	bonus := 0
	for _, activity := range activities {
		keywords, ok := activityAffinities[activity]
		if !ok {
			continue
		}
		for _, keyword := range keywords {
			if strings.Contains(title, keyword) {
				bonus += 5
				break
			}
		}
	}
	return bonus
}
