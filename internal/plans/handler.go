package plans

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/extract"
	"careerpath-backend/internal/shared/server/respond"
	"careerpath-backend/internal/shared/storage/object"
)

// Handler wires HTTP handlers to the plans service.
type Handler struct {
	Svc   *Service
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, store object.ObjectStore) *Handler {
	return &Handler{Svc: svc, Store: store}
}

// RegisterRoutes attaches plan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-learning-plan", h.generate)
}

type generateRequest struct {
	ResumeText     string          `json:"resumeText"`
	ResumeFile     string          `json:"resumeFile"`
	TranscriptFile string          `json:"transcriptFile"`
	SelectedJob    json.RawMessage `json:"selectedJob"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, ok := decodeSelectedJob(req.SelectedJob)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "selectedJob is required", nil)
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" && strings.TrimSpace(req.ResumeFile) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "either resumeText or resumeFile is required", nil)
		return
	}

	resumeText := strings.TrimSpace(req.ResumeText)
	if resumeText == "" {
		resumeText = extract.TextFromStored(c.Request.Context(), h.Store, req.ResumeFile)
	}

	transcriptText := ""
	if strings.TrimSpace(req.TranscriptFile) != "" {
		transcriptText = extract.TextFromStored(c.Request.Context(), h.Store, req.TranscriptFile)
	}

	result := h.Svc.Generate(c.Request.Context(), job, resumeText, transcriptText)
	c.Set("usedFallback", result.UsedFallback)
	respond.OK(c, result)
}

// decodeSelectedJob accepts either a career object or a bare title string;
// clients send both shapes.
func decodeSelectedJob(raw json.RawMessage) (careers.Recommendation, bool) {
	if len(raw) == 0 {
		return careers.Recommendation{}, false
	}

	var title string
	if err := json.Unmarshal(raw, &title); err == nil {
		title = strings.TrimSpace(title)
		if title == "" {
			return careers.Recommendation{}, false
		}
		return careers.Recommendation{Title: title}, true
	}

	var job careers.Recommendation
	if err := json.Unmarshal(raw, &job); err != nil {
		return careers.Recommendation{}, false
	}
	if strings.TrimSpace(job.Title) == "" {
		return careers.Recommendation{}, false
	}
	return job, true
}
