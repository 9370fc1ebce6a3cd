package plans

import (
	"fmt"

	"careerpath-backend/internal/library"
)

// BuildResult carries the assembled days plus how many fell through to
// synthesized placeholders, so scarcity in a small library is visible to
// callers instead of silent.
type BuildResult struct {
	Days            []Day
	PlaceholderDays int
}

// Build assembles the full 30-day plan from a skill gap and the content
// library. Content type cycles with period 4; each skill owns a contiguous
// run of 4 days (one per type) before rotating. Resource selection prefers,
// in order: a type match tagged for the active skill, a type match tagged for
// any gap skill, any resource of the type, then a synthesized placeholder.
// Every day is always populated; Build never fails.
func Build(skillGap []string, lib *library.Library) BuildResult {
	if len(skillGap) == 0 {
		skillGap = []string{"basics"}
	}

	days := make([]Day, 0, TotalDays)
	placeholders := 0

	for day := 1; day <= TotalDays; day++ {
		desiredType := dayType(day)
		skill := skillGap[((day-1)/4)%len(skillGap)]

		entry := Day{
			Day:      day,
			Type:     desiredType,
			Duration: defaultDuration,
			Skill:    skill,
		}

		resource, found := lib.FindForSkill(skill, desiredType)
		if !found {
			resource, found = lib.FindForAnySkill(skillGap, desiredType)
		}
		if !found {
			resource, found = lib.FindByType(desiredType)
		}

		if found {
			entry.Title = resource.Title
			entry.Path = resource.Path
		} else {
			entry.Title = fmt.Sprintf("Day %d: %s Basics", day, skill)
			entry.Path = fmt.Sprintf("/content/day-%d.html", day)
			placeholders++
		}

		days = append(days, entry)
	}

	return BuildResult{Days: days, PlaceholderDays: placeholders}
}
