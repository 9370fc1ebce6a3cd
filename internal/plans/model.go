package plans

import (
	"time"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/library"
)

// TotalDays is the fixed plan length.
const TotalDays = 30

const defaultDuration = "5 minutes"

// typeCycle is the canonical content type ordering; day d gets
// typeCycle[(d-1)%4].
var typeCycle = []string{library.TypeReading, library.TypeVideo, library.TypeQuiz, library.TypeGame}

// Day is a single plan entry. Completed is mutated only by the presentation
// layer.
type Day struct {
	Day       int    `json:"day"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Duration  string `json:"duration"`
	Skill     string `json:"skill,omitempty"`
	Path      string `json:"path,omitempty"`
	Completed bool   `json:"completed"`
}

// Response is the caller-facing plan payload. Plan duplicates Days for
// client convenience.
type Response struct {
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	TotalDays     int                    `json:"totalDays"`
	Days          []Day                  `json:"days"`
	EstimatedTime string                 `json:"estimatedTime"`
	GeneratedAt   time.Time              `json:"generatedAt"`
	Career        careers.Recommendation `json:"career"`
	SelectedJob   careers.Recommendation `json:"selectedJob"`
	MissingSkills []string               `json:"missingSkills"`
	Plan          []Day                  `json:"plan"`
	UsedFallback  bool                   `json:"usedFallback"`
}

func dayType(day int) string {
	return typeCycle[(day-1)%len(typeCycle)]
}
