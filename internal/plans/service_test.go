package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/library"
	"careerpath-backend/internal/llm"
)

// stubClient answers the skills prompt and the plan prompt independently,
// keyed on the request model.
type stubClient struct {
	planReply   string
	planErr     error
	skillsReply string
	skillsErr   error
	skillsModel string
}

func (s stubClient) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	if req.Model == s.skillsModel {
		return s.skillsReply, s.skillsErr
	}
	return s.planReply, s.planErr
}

func failingClient() stubClient {
	err := &llm.ServiceError{Provider: "openai", Err: errors.New("unavailable")}
	return stubClient{planErr: err, skillsErr: err, skillsModel: "skills-model"}
}

func newTestService(client llm.Client) *Service {
	return NewService(client, "plan-model", "skills-model", library.Fallback())
}

func validPlanJSON() string {
	days := make([]map[string]any, TotalDays)
	for i := range days {
		days[i] = map[string]any{
			"day":      i + 1,
			"title":    fmt.Sprintf("Day %d: Topic", i+1),
			"type":     dayType(i + 1),
			"duration": "5 minutes",
		}
	}
	payload, _ := json.Marshal(map[string]any{
		"title":       "Custom Plan",
		"description": "A tailored plan",
		"totalDays":   TotalDays,
		"days":        days,
	})
	return string(payload)
}

func TestGenerateFallsBackWhenServiceFails(t *testing.T) {
	svc := newTestService(failingClient())
	job := careers.Recommendation{Title: "Data Analyst"}

	resp := svc.Generate(context.Background(), job, "resume text", "")

	if !resp.UsedFallback {
		t.Fatalf("expected fallback plan")
	}
	if len(resp.Days) != TotalDays || resp.TotalDays != TotalDays {
		t.Fatalf("expected %d days, got %d", TotalDays, len(resp.Days))
	}
	if resp.Days[0].Title != "Day 1: Excel Basics" {
		t.Fatalf("expected topic-table title, got %q", resp.Days[0].Title)
	}
	if resp.Title != "Data Analyst Learning Plan" {
		t.Fatalf("unexpected title %q", resp.Title)
	}
	wantSkills := FallbackSkillsForRole("Data Analyst")
	if len(resp.MissingSkills) != len(wantSkills) || resp.MissingSkills[0] != wantSkills[0] {
		t.Fatalf("expected static skill gap %v, got %v", wantSkills, resp.MissingSkills)
	}
	if resp.SelectedJob.Title != "Data Analyst" || resp.Career.Title != "Data Analyst" {
		t.Fatalf("expected job echoed back")
	}
	if len(resp.Plan) != TotalDays {
		t.Fatalf("expected plan alias populated")
	}
}

func TestGenerateUsesGenerativePlan(t *testing.T) {
	client := stubClient{
		planReply:   "```json\n" + validPlanJSON() + "\n```",
		skillsReply: `["SQL", "Git"]`,
		skillsModel: "skills-model",
	}
	svc := newTestService(client)

	resp := svc.Generate(context.Background(), careers.Recommendation{Title: "Data Analyst"}, "resume", "")

	if resp.UsedFallback {
		t.Fatalf("expected generative plan")
	}
	if resp.Title != "Custom Plan" {
		t.Fatalf("unexpected title %q", resp.Title)
	}
	if len(resp.MissingSkills) != 2 || resp.MissingSkills[0] != "SQL" {
		t.Fatalf("unexpected missing skills %v", resp.MissingSkills)
	}
	if len(resp.Days) != TotalDays {
		t.Fatalf("expected %d days, got %d", TotalDays, len(resp.Days))
	}
}

func TestGenerateWrongDayCountFallsBack(t *testing.T) {
	client := stubClient{
		planReply:   `{"title":"Short","days":[{"day":1,"title":"Only day","type":"reading","duration":"5 minutes"}]}`,
		skillsReply: `["SQL"]`,
		skillsModel: "skills-model",
	}
	svc := newTestService(client)

	resp := svc.Generate(context.Background(), careers.Recommendation{Title: "Frontend Developer"}, "resume", "")

	if !resp.UsedFallback {
		t.Fatalf("expected fallback for a 1-day plan")
	}
	if len(resp.Days) != TotalDays {
		t.Fatalf("expected %d days, got %d", TotalDays, len(resp.Days))
	}
}

func TestGenerateSkillsDegradeIndependently(t *testing.T) {
	// Plan generation succeeds while the skills call fails.
	client := stubClient{
		planReply:   validPlanJSON(),
		skillsErr:   &llm.ServiceError{Provider: "openai", Err: errors.New("quota")},
		skillsModel: "skills-model",
	}
	svc := newTestService(client)

	resp := svc.Generate(context.Background(), careers.Recommendation{Title: "Frontend Developer"}, "resume", "")

	if resp.UsedFallback {
		t.Fatalf("plan should still be generative")
	}
	wantSkills := FallbackSkillsForRole("Frontend Developer")
	if len(resp.MissingSkills) != len(wantSkills) {
		t.Fatalf("expected static skill gap, got %v", resp.MissingSkills)
	}
}

func TestRepairDaysNormalizesEntries(t *testing.T) {
	days := make([]Day, TotalDays)
	for i := range days {
		days[i] = Day{
			Day:       99,
			Title:     fmt.Sprintf("Topic %d", i+1),
			Type:      "Reading",
			Duration:  "5 minutes",
			Completed: true,
		}
	}
	days[2].Title = "   "
	days[3].Type = "webinar"
	days[4].Duration = ""

	out, err := repairDays(days, "Data Analyst")
	if err != nil {
		t.Fatalf("repair: %v", err)
	}

	for i, d := range out {
		if d.Day != i+1 {
			t.Fatalf("expected renumbering, got day %d at index %d", d.Day, i)
		}
		if d.Completed {
			t.Fatalf("day %d should be reset to incomplete", d.Day)
		}
	}
	if out[0].Type != "reading" {
		t.Fatalf("expected type lowered, got %q", out[0].Type)
	}
	if out[2].Title != "Day 3: Formulas & Functions" {
		t.Fatalf("expected topic-table backfill, got %q", out[2].Title)
	}
	if out[3].Type != dayType(4) {
		t.Fatalf("expected cycle type for invalid entry, got %q", out[3].Type)
	}
	if out[4].Duration != "5 minutes" {
		t.Fatalf("expected default duration, got %q", out[4].Duration)
	}
}

func TestRepairDaysRejectsWrongCount(t *testing.T) {
	if _, err := repairDays(make([]Day, 12), "Data Analyst"); err == nil {
		t.Fatalf("expected error for 12-day plan")
	}
	if _, err := repairDays(nil, "Data Analyst"); err == nil {
		t.Fatalf("expected error for empty plan")
	}
}

func TestFallbackPlanTitlesFollowTopicTable(t *testing.T) {
	svc := newTestService(failingClient())

	resp := svc.fallbackPlan(careers.Recommendation{Title: "Frontend Developer"}, []string{"React"})

	for _, d := range resp.Days {
		want := fmt.Sprintf("Day %d: %s", d.Day, TopicForDay("Frontend Developer", d.Day))
		if d.Title != want {
			t.Fatalf("day %d: expected %q, got %q", d.Day, want, d.Title)
		}
		if !strings.HasPrefix(d.Title, fmt.Sprintf("Day %d:", d.Day)) {
			t.Fatalf("day %d: malformed title %q", d.Day, d.Title)
		}
	}
}
