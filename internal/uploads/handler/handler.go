package handler

import (
	"errors"
	"net/http"

	"scriptvault/internal/apierrors"
	"scriptvault/internal/observability"
	"scriptvault/internal/uploads/processor"

	"github.com/gin-gonic/gin"
)

// multipart overhead allowed on top of the file itself
const formOverhead = 1 << 20

type Handler struct {
	processor processor.UploadProcessor
	logger    *observability.Logger
}

func New(processor processor.UploadProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// HandleUpload handles POST /admin/upload with a multipart "file" field
func (h *Handler) HandleUpload(c *gin.Context) {
	ctx := c.Request.Context()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, processor.MaxUploadSize+formOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			apierrors.RespondWithError(c, processor.ErrFileTooLarge)
			return
		}
		apierrors.RespondWithError(c, processor.ErrNoFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Error(ctx, "failed to open uploaded file", err)
		apierrors.RespondWithError(c, err)
		return
	}
	defer file.Close()

	url, err := h.processor.UploadBackground(ctx, &processor.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
