package careers

import (
	"context"
	"errors"
	"testing"

	"careerpath-backend/internal/llm"
)

type stubClient struct {
	reply string
	err   error
}

func (s stubClient) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	return s.reply, s.err
}

func TestRecommendFallsBackWhenServiceFails(t *testing.T) {
	svc := NewService(stubClient{err: &llm.ServiceError{Provider: "openai", Err: errors.New("boom")}}, "model")

	result := svc.Recommend(context.Background(), 60000, []string{"Building things"}, []string{"JavaScript"})

	if !result.UsedFallback {
		t.Fatalf("expected fallback result")
	}
	if len(result.Careers) == 0 || len(result.Careers) > 10 {
		t.Fatalf("expected 1..10 careers, got %d", len(result.Careers))
	}
	if result.Careers[0].Title != "Junior Frontend Developer" {
		t.Fatalf("expected ranked fallback, got %q first", result.Careers[0].Title)
	}
}

func TestRecommendFallsBackOnUnparseableReply(t *testing.T) {
	svc := NewService(stubClient{reply: "Sorry, I cannot help with that."}, "model")

	result := svc.Recommend(context.Background(), 60000, []string{"Helping people"}, []string{"Excel"})

	if !result.UsedFallback {
		t.Fatalf("expected fallback for unparseable reply")
	}
}

func TestRecommendAcceptsFencedReply(t *testing.T) {
	reply := "Here are your matches:\n```json\n" +
		`[{"title":"QA Tester","description":"Test software","salaryRange":"$35,000 - $50,000","matchScore":91.4,"requiredSkills":["Attention to Detail",""],"growthPotential":"Solid"}]` +
		"\n```"
	svc := NewService(stubClient{reply: reply}, "model")

	result := svc.Recommend(context.Background(), 50000, []string{"Solving problems"}, []string{"Testing"})

	if result.UsedFallback {
		t.Fatalf("expected generative result")
	}
	if len(result.Careers) != 1 {
		t.Fatalf("expected 1 career, got %d", len(result.Careers))
	}
	got := result.Careers[0]
	if got.Title != "QA Tester" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.MatchScore != 91 {
		t.Fatalf("expected truncated score 91, got %d", got.MatchScore)
	}
	if len(got.RequiredSkills) != 1 {
		t.Fatalf("expected empty skill entries dropped, got %v", got.RequiredSkills)
	}
}

func TestRecommendClampsOutOfRangeScores(t *testing.T) {
	reply := `[{"title":"A","matchScore":5},{"title":"B","matchScore":150}]`
	svc := NewService(stubClient{reply: reply}, "model")

	result := svc.Recommend(context.Background(), 50000, []string{"x"}, []string{"y"})

	if result.UsedFallback {
		t.Fatalf("expected generative result")
	}
	if result.Careers[0].MatchScore != 70 || result.Careers[1].MatchScore != 99 {
		t.Fatalf("expected clamped scores 70 and 99, got %d and %d",
			result.Careers[0].MatchScore, result.Careers[1].MatchScore)
	}
}

func TestRecommendFallsBackWhenAllEntriesInvalid(t *testing.T) {
	svc := NewService(stubClient{reply: `[{"title":"  "},{"description":"no title"}]`}, "model")

	result := svc.Recommend(context.Background(), 50000, []string{"x"}, []string{"y"})

	if !result.UsedFallback {
		t.Fatalf("expected fallback when every entry is dropped")
	}
}

func TestRecommendCapsGenerativeListAtTen(t *testing.T) {
	reply := `[
		{"title":"C1","matchScore":80},{"title":"C2","matchScore":80},{"title":"C3","matchScore":80},
		{"title":"C4","matchScore":80},{"title":"C5","matchScore":80},{"title":"C6","matchScore":80},
		{"title":"C7","matchScore":80},{"title":"C8","matchScore":80},{"title":"C9","matchScore":80},
		{"title":"C10","matchScore":80},{"title":"C11","matchScore":80},{"title":"C12","matchScore":80}
	]`
	svc := NewService(stubClient{reply: reply}, "model")

	result := svc.Recommend(context.Background(), 50000, []string{"x"}, []string{"y"})

	if len(result.Careers) != 10 {
		t.Fatalf("expected 10 careers, got %d", len(result.Careers))
	}
}
