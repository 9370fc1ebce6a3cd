// Package library holds the static catalog of learning resources. The catalog
// is loaded once at startup and read-only for the process lifetime.
package library

import (
	"encoding/json"
	"os"
	"strings"

	"careerpath-backend/internal/shared/telemetry"
)

// Recognized content types, shared with learning plan days.
const (
	TypeReading = "reading"
	TypeVideo   = "video"
	TypeQuiz    = "quiz"
	TypeGame    = "game"
)

// ValidType reports whether t is one of the four recognized content types.
func ValidType(t string) bool {
	switch t {
	case TypeReading, TypeVideo, TypeQuiz, TypeGame:
		return true
	default:
		return false
	}
}

// Resource is a single catalog entry. Length is minutes-equivalent.
type Resource struct {
	Title  string   `json:"title"`
	Type   string   `json:"type"`
	Tags   []string `json:"tags"`
	Path   string   `json:"path"`
	Length int      `json:"length"`
}

// Library is an immutable set of resources.
type Library struct {
	resources []Resource
}

type catalogFile struct {
	Resources []Resource `json:"resources"`
}

// Load reads the catalog JSON from path. Any load or parse failure substitutes
// the minimal fallback library rather than failing startup.
func Load(path string) *Library {
	data, err := os.ReadFile(path)
	if err != nil {
		telemetry.Warn("library.load_failed", map[string]any{"path": path, "error": err.Error()})
		return Fallback()
	}

	var parsed catalogFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		telemetry.Warn("library.parse_failed", map[string]any{"path": path, "error": err.Error()})
		return Fallback()
	}

	resources := make([]Resource, 0, len(parsed.Resources))
	for _, r := range parsed.Resources {
		r.Type = strings.ToLower(strings.TrimSpace(r.Type))
		if !ValidType(r.Type) {
			telemetry.Warn("library.resource_skipped", map[string]any{"title": r.Title, "type": r.Type})
			continue
		}
		resources = append(resources, r)
	}
	if len(resources) == 0 {
		return Fallback()
	}

	telemetry.Info("library.loaded", map[string]any{"path": path, "resources": len(resources)})
	return &Library{resources: resources}
}

// Fallback returns the single-entry minimal library.
func Fallback() *Library {
	return &Library{resources: []Resource{
		{
			Title:  "Getting Started",
			Type:   TypeReading,
			Tags:   []string{"basics", "introduction"},
			Path:   "/readings/getting-started.md",
			Length: 5,
		},
	}}
}

// New builds a library from explicit resources; intended for tests.
func New(resources []Resource) *Library {
	return &Library{resources: append([]Resource(nil), resources...)}
}

// Len returns the number of resources in the catalog.
func (l *Library) Len() int {
	return len(l.resources)
}

// FindForSkill returns the first resource of the given type whose tags match
// the skill (case-insensitive substring, either direction).
func (l *Library) FindForSkill(skill, contentType string) (Resource, bool) {
	for _, r := range l.resources {
		if r.Type != contentType {
			continue
		}
		if tagsMatchSkill(r.Tags, skill) {
			return r, true
		}
	}
	return Resource{}, false
}

// FindForAnySkill returns the first resource of the given type whose tags
// match any skill in the list.
func (l *Library) FindForAnySkill(skillList []string, contentType string) (Resource, bool) {
	for _, r := range l.resources {
		if r.Type != contentType {
			continue
		}
		for _, skill := range skillList {
			if tagsMatchSkill(r.Tags, skill) {
				return r, true
			}
		}
	}
	return Resource{}, false
}

// FindByType returns the first resource of the given type, regardless of tags.
func (l *Library) FindByType(contentType string) (Resource, bool) {
	for _, r := range l.resources {
		if r.Type == contentType {
			return r, true
		}
	}
	return Resource{}, false
}

func tagsMatchSkill(tags []string, skill string) bool {
	loweredSkill := strings.ToLower(strings.TrimSpace(skill))
	if loweredSkill == "" {
		return false
	}
	for _, tag := range tags {
		loweredTag := strings.ToLower(strings.TrimSpace(tag))
		if loweredTag == "" {
			continue
		}
		if strings.Contains(loweredTag, loweredSkill) || strings.Contains(loweredSkill, loweredTag) {
			return true
		}
	}
	return false
}
