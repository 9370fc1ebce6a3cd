package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesAllSeries(t *testing.T) {
	IncRecommendationRequests()
	IncPlanRequests()
	AddPlanPlaceholderDays(3)
	ObserveLLMDurationMs(123)

	out := Render()
	for _, name := range []string{
		"recommendation_requests_total",
		"recommendation_fallbacks_total",
		"plan_requests_total",
		"plan_fallbacks_total",
		"plan_placeholder_days_total",
		"llm_duration_ms_bucket",
		"llm_duration_ms_sum",
		"llm_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in render output", name)
		}
	}
	if !strings.Contains(out, "# TYPE llm_duration_ms histogram") {
		t.Fatalf("expected histogram type line")
	}
}

func TestAddPlanPlaceholderDaysIgnoresNonPositive(t *testing.T) {
	before := planPlaceholderDaysTotal.Load()
	AddPlanPlaceholderDays(0)
	AddPlanPlaceholderDays(-5)
	if planPlaceholderDaysTotal.Load() != before {
		t.Fatalf("expected counter unchanged")
	}
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(5000)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts %v", snap.counts)
	}
	if snap.sum != 5055 {
		t.Fatalf("expected sum 5055, got %v", snap.sum)
	}
}
