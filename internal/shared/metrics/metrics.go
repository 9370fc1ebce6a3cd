package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	recommendationRequestsTotal  atomic.Uint64
	recommendationFallbacksTotal atomic.Uint64
	planRequestsTotal            atomic.Uint64
	planFallbacksTotal           atomic.Uint64
	planPlaceholderDaysTotal     atomic.Uint64

	llmDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncRecommendationRequests increments the career recommendation request counter.
func IncRecommendationRequests() {
	recommendationRequestsTotal.Add(1)
}

// IncRecommendationFallbacks increments the career recommendation fallback counter.
func IncRecommendationFallbacks() {
	recommendationFallbacksTotal.Add(1)
}

// IncPlanRequests increments the learning plan request counter.
func IncPlanRequests() {
	planRequestsTotal.Add(1)
}

// IncPlanFallbacks increments the learning plan fallback counter.
func IncPlanFallbacks() {
	planFallbacksTotal.Add(1)
}

// AddPlanPlaceholderDays records how many days of a built plan fell through to
// synthesized placeholder content.
func AddPlanPlaceholderDays(n int) {
	if n <= 0 {
		return
	}
	planPlaceholderDaysTotal.Add(uint64(n))
}

// ObserveLLMDurationMs records a generative service call duration in milliseconds.
func ObserveLLMDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	llmDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "recommendation_requests_total", "Total career recommendation requests", recommendationRequestsTotal.Load())
	writeCounter(&buf, "recommendation_fallbacks_total", "Total career recommendations served by the deterministic ranker", recommendationFallbacksTotal.Load())
	writeCounter(&buf, "plan_requests_total", "Total learning plan requests", planRequestsTotal.Load())
	writeCounter(&buf, "plan_fallbacks_total", "Total learning plans served by the deterministic builder", planFallbacksTotal.Load())
	writeCounter(&buf, "plan_placeholder_days_total", "Total plan days filled with synthesized placeholder content", planPlaceholderDaysTotal.Load())
	writeHistogram(&buf, "llm_duration_ms", "Generative service call duration in milliseconds", llmDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
