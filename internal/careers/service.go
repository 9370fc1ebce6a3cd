package careers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careerpath-backend/internal/llm"
	"careerpath-backend/internal/sanitize"
	"careerpath-backend/internal/shared/metrics"
	"careerpath-backend/internal/shared/telemetry"
)

// Service orchestrates generative career recommendations with deterministic
// fallback. Exactly one generative call is attempted per request; every
// failure mode degrades to the local ranker, never to a caller-visible error.
type Service struct {
	LLM   llm.Client
	Model string
}

// NewService constructs a Service.
func NewService(client llm.Client, model string) *Service {
	return &Service{LLM: client, Model: model}
}

// Result is the caller-facing recommendation payload.
type Result struct {
	Careers      []Recommendation `json:"careers"`
	UsedFallback bool             `json:"usedFallback"`
}

// Recommend returns up to 10 entry-level career recommendations. The result
// is always structurally valid: a non-empty career list.
func (s *Service) Recommend(ctx context.Context, salary float64, activities, userSkills []string) Result {
	metrics.IncRecommendationRequests()

	careers, err := s.generate(ctx, salary, activities, userSkills)
	if err != nil {
		telemetry.Warn("careers.fallback", map[string]any{"reason": err.Error()})
		metrics.IncRecommendationFallbacks()
		return Result{Careers: Rank(salary, activities, userSkills), UsedFallback: true}
	}
	return Result{Careers: careers}
}

func (s *Service) generate(ctx context.Context, salary float64, activities, userSkills []string) ([]Recommendation, error) {
	raw, err := s.LLM.Complete(ctx, llm.ChatRequest{
		Model:       s.Model,
		Messages:    buildRecommendationPrompt(salary, activities, userSkills),
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	payload, err := sanitize.Array(raw)
	if err != nil {
		return nil, err
	}

	return normalizeCareers(payload)
}

// looseCareer tolerates the score arriving as a float.
type looseCareer struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SalaryRange     string   `json:"salaryRange"`
	MatchScore      float64  `json:"matchScore"`
	RequiredSkills  []string `json:"requiredSkills"`
	GrowthPotential string   `json:"growthPotential"`
}

func normalizeCareers(payload json.RawMessage) ([]Recommendation, error) {
	var parsed []looseCareer
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("careers payload shape: %w", err)
	}

	out := make([]Recommendation, 0, len(parsed))
	for _, c := range parsed {
		title := strings.TrimSpace(c.Title)
		if title == "" {
			continue
		}
		skills := make([]string, 0, len(c.RequiredSkills))
		for _, skill := range c.RequiredSkills {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				skills = append(skills, trimmed)
			}
		}
		out = append(out, Recommendation{
			Title:           title,
			Description:     strings.TrimSpace(c.Description),
			SalaryRange:     strings.TrimSpace(c.SalaryRange),
			MatchScore:      clampMatchScore(int(c.MatchScore)),
			RequiredSkills:  skills,
			GrowthPotential: strings.TrimSpace(c.GrowthPotential),
		})
		if len(out) == maxRecommendations {
			break
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("careers payload empty after validation")
	}
	return out, nil
}
