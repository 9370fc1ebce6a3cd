package careers

import (
	"reflect"
	"testing"
)

func TestRankDeterministic(t *testing.T) {
	activities := []string{"Building things", "Solving problems"}
	userSkills := []string{"JavaScript", "Excel"}

	first := Rank(75000, activities, userSkills)
	second := Rank(75000, activities, userSkills)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output for identical input")
	}
}

func TestRankOrderingAndBounds(t *testing.T) {
	recs := Rank(50000, []string{"Helping people"}, []string{"Communication"})

	if len(recs) == 0 || len(recs) > 10 {
		t.Fatalf("expected 1..10 recommendations, got %d", len(recs))
	}
	for i, rec := range recs {
		if rec.MatchScore < 70 || rec.MatchScore > 99 {
			t.Fatalf("score out of range for %q: %d", rec.Title, rec.MatchScore)
		}
		if i > 0 && recs[i-1].MatchScore < rec.MatchScore {
			t.Fatalf("scores not descending at index %d", i)
		}
	}
}

func TestRankBuilderWithJavaScriptPrefersFrontend(t *testing.T) {
	recs := Rank(75000, []string{"Building things"}, []string{"JavaScript"})

	if recs[0].Title != "Junior Frontend Developer" {
		t.Fatalf("expected Junior Frontend Developer first, got %q", recs[0].Title)
	}
	// Base 92 + skill match + activity bonus clamps at the ceiling.
	if recs[0].MatchScore != 99 {
		t.Fatalf("expected clamped score 99, got %d", recs[0].MatchScore)
	}
}

func TestRankSkillMatchUsesContains(t *testing.T) {
	// "advanced excel skills" should still credit the Excel requirement.
	withMatch := Rank(40000, nil, []string{"advanced excel skills"})
	without := Rank(40000, nil, nil)

	scoreOf := func(recs []Recommendation, title string) int {
		for _, r := range recs {
			if r.Title == title {
				return r.MatchScore
			}
		}
		t.Fatalf("missing %q", title)
		return 0
	}

	if scoreOf(withMatch, "Data Analyst Associate") != scoreOf(without, "Data Analyst Associate")+2 {
		t.Fatalf("expected a +2 bonus for the substring skill match")
	}
}

func TestRankUnknownActivityIgnored(t *testing.T) {
	base := Rank(40000, nil, nil)
	withUnknown := Rank(40000, []string{"Skydiving"}, nil)

	if !reflect.DeepEqual(base, withUnknown) {
		t.Fatalf("unknown activity should not change scoring")
	}
}

func TestClampMatchScore(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 70}, {69, 70}, {70, 70}, {85, 85}, {99, 99}, {100, 99}, {1000, 99},
	}
	for _, tc := range cases {
		if got := clampMatchScore(tc.in); got != tc.want {
			t.Fatalf("clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
