package careers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the careers service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches career routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/career-recommendations", h.recommend)
}

type recommendRequest struct {
	Salary     float64  `json:"salary"`
	Activities []string `json:"activities"`
	Skills     []string `json:"skills"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Activities) == 0 || len(req.Skills) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "activities and skills are required", nil)
		return
	}

	result := h.Svc.Recommend(c.Request.Context(), req.Salary, req.Activities, req.Skills)
	c.Set("usedFallback", result.UsedFallback)
	respond.OK(c, result)
}
