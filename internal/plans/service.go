package plans

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/library"
	"careerpath-backend/internal/llm"
	"careerpath-backend/internal/sanitize"
	"careerpath-backend/internal/shared/metrics"
	"careerpath-backend/internal/shared/telemetry"
	"careerpath-backend/internal/skills"
)

// Service orchestrates generative learning plan synthesis with deterministic
// fallback. Like the careers orchestrator, each generative concern gets
// exactly one service call; all recovery is local synthesis.
type Service struct {
	LLM         llm.Client
	Model       string
	SkillsModel string
	Library     *library.Library
}

// NewService constructs a Service.
func NewService(client llm.Client, model, skillsModel string, lib *library.Library) *Service {
	return &Service{LLM: client, Model: model, SkillsModel: skillsModel, Library: lib}
}

// Generate produces the full 30-day learning plan response for a selected
// job. The result is always structurally valid: exactly 30 contiguous days
// and a non-empty missing-skills list.
func (s *Service) Generate(ctx context.Context, job careers.Recommendation, resumeText, transcriptText string) Response {
	metrics.IncPlanRequests()

	missing := s.missingSkills(ctx, resumeText, job.Title)

	resp, err := s.generatePlan(ctx, job, resumeText, transcriptText)
	if err != nil {
		telemetry.Warn("plans.fallback", map[string]any{"role": job.Title, "reason": err.Error()})
		metrics.IncPlanFallbacks()
		resp = s.fallbackPlan(job, missing)
		resp.UsedFallback = true
	}

	resp.SelectedJob = job
	resp.MissingSkills = missing
	resp.Plan = resp.Days
	return resp
}

func (s *Service) generatePlan(ctx context.Context, job careers.Recommendation, resumeText, transcriptText string) (Response, error) {
	raw, err := s.LLM.Complete(ctx, llm.ChatRequest{
		Model:       s.Model,
		Messages:    buildPlanPrompt(job, resumeText, transcriptText),
		MaxTokens:   2500,
		Temperature: 0.7,
	})
	if err != nil {
		return Response{}, err
	}

	payload, err := sanitize.Object(raw)
	if err != nil {
		return Response{}, err
	}

	var parsed struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		TotalDays   int    `json:"totalDays"`
		Days        []Day  `json:"days"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return Response{}, fmt.Errorf("plan payload shape: %w", err)
	}

	days, err := repairDays(parsed.Days, job.Title)
	if err != nil {
		return Response{}, err
	}

	title := strings.TrimSpace(parsed.Title)
	if title == "" {
		title = fmt.Sprintf("%s Learning Plan", job.Title)
	}
	description := strings.TrimSpace(parsed.Description)
	if description == "" {
		description = fmt.Sprintf("A personalized 30-day learning plan to prepare you for a %s role", job.Title)
	}

	return Response{
		Title:         title,
		Description:   description,
		TotalDays:     TotalDays,
		Days:          days,
		EstimatedTime: "5 minutes per day",
		GeneratedAt:   time.Now().UTC(),
		Career:        job,
	}, nil
}

// repairDays normalizes a parsed day list into the plan invariants: exactly
// 30 entries numbered 1..30 with a recognized type, a non-empty title, and a
// duration. Wrong day counts are not recoverable; everything else is.
func repairDays(days []Day, role string) ([]Day, error) {
	if len(days) != TotalDays {
		return nil, fmt.Errorf("plan has %d days, want %d", len(days), TotalDays)
	}

	out := make([]Day, TotalDays)
	for i, d := range days {
		n := i + 1
		d.Day = n
		d.Type = strings.ToLower(strings.TrimSpace(d.Type))
		if !library.ValidType(d.Type) {
			d.Type = dayType(n)
		}
		if strings.TrimSpace(d.Title) == "" {
			d.Title = fmt.Sprintf("Day %d: %s", n, TopicForDay(role, n))
		}
		if strings.TrimSpace(d.Duration) == "" {
			d.Duration = defaultDuration
		}
		d.Completed = false
		out[i] = d
	}
	return out, nil
}

// fallbackPlan builds the deterministic plan: structure, skills, and resource
// paths from the library-driven builder, day titles from the per-role topic
// table.
func (s *Service) fallbackPlan(job careers.Recommendation, missing []string) Response {
	built := Build(missing, s.Library)
	if built.PlaceholderDays > 0 {
		telemetry.Info("plans.placeholder_days", map[string]any{
			"role":  job.Title,
			"count": built.PlaceholderDays,
		})
		metrics.AddPlanPlaceholderDays(built.PlaceholderDays)
	}

	days := built.Days
	for i := range days {
		days[i].Title = fmt.Sprintf("Day %d: %s", days[i].Day, TopicForDay(job.Title, days[i].Day))
	}

	return Response{
		Title:         fmt.Sprintf("%s Learning Plan", job.Title),
		Description:   fmt.Sprintf("A personalized 30-day learning plan to prepare you for a %s role", job.Title),
		TotalDays:     TotalDays,
		Days:          days,
		EstimatedTime: "5 minutes per day",
		GeneratedAt:   time.Now().UTC(),
		Career:        job,
	}
}

// missingSkills identifies the skill gap for a role from resume text. It
// degrades from generative extraction to the static per-role table and never
// returns an empty list.
func (s *Service) missingSkills(ctx context.Context, resumeText, jobTitle string) []string {
	raw, err := s.LLM.Complete(ctx, llm.ChatRequest{
		Model:       s.SkillsModel,
		Messages:    buildMissingSkillsPrompt(resumeText, jobTitle),
		MaxTokens:   200,
		Temperature: 0.3,
	})
	if err != nil {
		telemetry.Warn("plans.skills_fallback", map[string]any{"role": jobTitle, "reason": err.Error()})
		return FallbackSkillsForRole(jobTitle)
	}
	return skills.ExtractList(raw)
}
