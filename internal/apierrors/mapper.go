package apierrors

import (
	"errors"

	analyticsProcessor "scriptvault/internal/analytics/processor"
	authProcessor "scriptvault/internal/auth/processor"
	scriptsProcessor "scriptvault/internal/scripts/processor"
	"scriptvault/internal/store"
	uploadsProcessor "scriptvault/internal/uploads/processor"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// Anything else becomes a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// auth
	case errors.Is(err, authProcessor.ErrIncorrectPassword),
		errors.Is(err, authProcessor.ErrPasswordRequired):
		return Unauthorized("Invalid password")

	// scripts
	case errors.Is(err, scriptsProcessor.ErrTitleRequired):
		return BadRequest(CodeTitleRequired, "Title is required")

	case errors.Is(err, scriptsProcessor.ErrContentRequired):
		return BadRequest(CodeContentRequired, "Script content is required")

	case errors.Is(err, scriptsProcessor.ErrInvalidScriptID):
		return BadRequest(CodeInvalidScriptID, "Invalid script id")

	case errors.Is(err, scriptsProcessor.ErrScriptNotFound):
		return NotFound(CodeScriptNotFound, "Script not found")

	case errors.Is(err, scriptsProcessor.ErrSlugExhausted):
		return Conflict(CodeSlugExists, "Could not allocate a unique slug. Please try again.")

	// uploads
	case errors.Is(err, uploadsProcessor.ErrNoFile):
		return BadRequest(CodeNoFile, "No file provided")

	case errors.Is(err, uploadsProcessor.ErrInvalidFileType):
		return BadRequest(CodeInvalidFileType, "Invalid file type. Allowed: JPEG, PNG, WebP, GIF")

	case errors.Is(err, uploadsProcessor.ErrFileTooLarge):
		return BadRequest(CodeFileTooLarge, "File too large. Maximum size is 10MB")

	case errors.Is(err, uploadsProcessor.ErrUploadFailed):
		return InternalError(err)

	// analytics
	case errors.Is(err, analyticsProcessor.ErrInvalidEventType),
		errors.Is(err, analyticsProcessor.ErrInvalidScriptID):
		return BadRequest(CodeInvalidPayload, "Invalid payload")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
