package handler

import (
	"net/http"

	"scriptvault/internal/apierrors"
	"scriptvault/internal/auth/processor"
	"scriptvault/internal/observability"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is the cookie carrying the admin session credential
	SessionCookieName = "admin_session"

	sessionMaxAge = 60 * 60 * 24 * 7 // 7 days
)

type Handler struct {
	authProcessor processor.AuthProcessor
	secureCookies bool
	logger        *observability.Logger
}

type LoginRequest struct {
	Password string `json:"password"`
}

// New creates the admin auth handler. secureCookies marks the session cookie
// Secure and is enabled in production.
func New(authProcessor processor.AuthProcessor, secureCookies bool, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, secureCookies: secureCookies, logger: logger}
}

// HandleLogin checks the admin password and issues a session cookie
func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	token, err := h.authProcessor.Login(ctx, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	h.setSessionCookie(c, token, sessionMaxAge)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HandleLogout clears the session cookie
func (h *Handler) HandleLogout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HandleCheck reports whether the request carries a valid session
func (h *Handler) HandleCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": processor.IsValidSession(sessionCredential(c))})
}

// HandleSessionMiddleware rejects requests without a valid admin session
func (h *Handler) HandleSessionMiddleware(c *gin.Context) {
	if !processor.IsValidSession(sessionCredential(c)) {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Unauthorized"))
		return
	}
	c.Next()
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, value, maxAge, "/", "", h.secureCookies, true)
}

// sessionCredential returns the session cookie value, or nil when absent
func sessionCredential(c *gin.Context) *string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	return &cookie
}
