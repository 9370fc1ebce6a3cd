// Package skills turns free-form model replies into clean skill lists.
package skills

import (
	"regexp"
	"strings"
)

const maxSkills = 7

// DefaultSkills is the last-resort skill gap when nothing usable can be mined
// from the reply text.
var DefaultSkills = []string{"Excel", "Communication", "Problem Solving"}

var (
	bracketList   = regexp.MustCompile(`\[([^\]]+)\]`)
	disallowed    = regexp.MustCompile(`[^\w\s,.-]`)
	quoteTrimSet  = `'"` + "`"
	minHeuristics = 2
)

// ExtractList mines an ordered list of distinct skill names from raw model
// text. It degrades in two tiers, structured extraction then heuristic text
// mining, and returns DefaultSkills when both come up empty. It never fails.
func ExtractList(raw string) []string {
	if match := bracketList.FindStringSubmatch(raw); match != nil {
		items := splitAndClean(match[1], 0)
		if len(items) > 0 {
			return items
		}
	}

	stripped := disallowed.ReplaceAllString(raw, "")
	items := splitAndClean(stripped, minHeuristics)
	if len(items) > 0 {
		return items
	}

	return append([]string(nil), DefaultSkills...)
}

func splitAndClean(raw string, minLen int) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		item := strings.Trim(strings.TrimSpace(part), quoteTrimSet)
		item = strings.TrimSpace(item)
		if len(item) <= minLen {
			continue
		}
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
		if len(out) == maxSkills {
			break
		}
	}
	return out
}
