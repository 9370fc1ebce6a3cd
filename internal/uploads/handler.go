// Package uploads accepts multipart resume and transcript files and stores
// them as transient objects for later text extraction.
package uploads

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/shared/server/respond"
	"careerpath-backend/internal/shared/storage/object"
	"careerpath-backend/internal/shared/telemetry"
)

const maxUploadBytes = 5 << 20

// Handler stores uploaded files through the configured object store.
type Handler struct {
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(store object.ObjectStore) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload-resume", h.upload("resume"))
	rg.POST("/upload-transcript", h.upload("transcript"))
}

func (h *Handler) upload(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile(field)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "no file uploaded", nil)
			return
		}
		if fileHeader.Size > maxUploadBytes {
			respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds size limit", nil)
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
			return
		}
		defer f.Close()

		storageKey, size, mimeType, err := h.Store.Save(c.Request.Context(), fileHeader.Filename, f)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store upload", nil)
			return
		}

		telemetry.Info("upload.stored", map[string]any{
			"field":     field,
			"file_name": fileHeader.Filename,
			"key":       storageKey,
			"bytes":     size,
			"mime_type": mimeType,
		})

		respond.OK(c, gin.H{
			"message":      field + " uploaded successfully",
			"filename":     storageKey,
			"originalname": fileHeader.Filename,
			"size":         size,
		})
	}
}
