package handler

import (
	"net/http"

	"scriptvault/internal/analytics/processor"
	"scriptvault/internal/apierrors"
	"scriptvault/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type RecordEventRequest struct {
	ScriptID  string `json:"scriptId"`
	EventType string `json:"eventType"`
}

// HandleRecordEvent handles POST /analytics
func (h *Handler) HandleRecordEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidPayload, "Invalid payload"))
		return
	}

	err := h.processor.RecordEvent(ctx, processor.RecordEventParams{
		ScriptID:  req.ScriptID,
		EventType: req.EventType,
		ClientIP:  observability.GetClientIP(c),
		UserAgent: observability.GetUserAgent(c),
		Country:   observability.GetViewerCountry(c),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HandleGetDashboard handles GET /admin/dashboard
func (h *Handler) HandleGetDashboard(c *gin.Context) {
	view, err := h.processor.GetDashboard(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
