package handler

import (
	"net/http"

	"scriptvault/internal/apierrors"
	"scriptvault/internal/observability"
	"scriptvault/internal/scripts/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ScriptProcessor
	logger    *observability.Logger
}

func New(processor processor.ScriptProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// ScriptFieldsRequest carries the editable script fields.
// Title and content are validated by the processor after trimming.
type ScriptFieldsRequest struct {
	Title              string  `json:"title"`
	Description        *string `json:"description"`
	ScriptContent      string  `json:"script_content"`
	GameName           *string `json:"game_name"`
	GameLink           *string `json:"game_link"`
	BackgroundImageURL *string `json:"background_image_url"`
}

type UpdateScriptRequest struct {
	ID string `json:"id" binding:"required"`
	ScriptFieldsRequest
}

type DeleteScriptRequest struct {
	ID string `json:"id" binding:"required"`
}

func (r ScriptFieldsRequest) toFields() processor.ScriptFields {
	return processor.ScriptFields{
		Title:              r.Title,
		Description:        r.Description,
		ScriptContent:      r.ScriptContent,
		GameName:           r.GameName,
		GameLink:           r.GameLink,
		BackgroundImageURL: r.BackgroundImageURL,
	}
}

// HandleCreateScript handles POST /admin/scripts
func (h *Handler) HandleCreateScript(c *gin.Context) {
	ctx := c.Request.Context()

	var req ScriptFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	script, err := h.processor.CreateScript(ctx, req.toFields())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "script": script})
}

// HandleUpdateScript handles PUT /admin/scripts
func (h *Handler) HandleUpdateScript(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	script, err := h.processor.UpdateScript(ctx, req.ID, req.toFields())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "script": script})
}

// HandleDeleteScript handles DELETE /admin/scripts
func (h *Handler) HandleDeleteScript(c *gin.Context) {
	ctx := c.Request.Context()

	var req DeleteScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := h.processor.DeleteScript(ctx, req.ID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HandleListScripts handles GET /scripts
func (h *Handler) HandleListScripts(c *gin.Context) {
	listing, err := h.processor.ListScripts(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// HandleGetScript handles GET /scripts/:slug
func (h *Handler) HandleGetScript(c *gin.Context) {
	page, err := h.processor.GetScriptBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
