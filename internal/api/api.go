package api

import (
	"context"
	"net/http"
	"time"

	"scriptvault/internal/apierrors"
	"scriptvault/internal/config"
	"scriptvault/internal/observability"
	"scriptvault/internal/ratelimit"

	analyticsHandler "scriptvault/internal/analytics/handler"
	authHandler "scriptvault/internal/auth/handler"
	scriptsHandler "scriptvault/internal/scripts/handler"
	uploadsHandler "scriptvault/internal/uploads/handler"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	scriptsHandler   scriptsHandler.Handler
	uploadsHandler   uploadsHandler.Handler
	analyticsHandler analyticsHandler.Handler
	rateLimiter      *ratelimit.Service
	limits           config.RateLimitConfig
	metrics          *observability.Metrics
	database         Pinger
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	scriptsHandler scriptsHandler.Handler,
	uploadsHandler uploadsHandler.Handler,
	analyticsHandler analyticsHandler.Handler,
	rateLimiter *ratelimit.Service,
	limits config.RateLimitConfig,
	metrics *observability.Metrics,
	database Pinger,
) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		scriptsHandler:   scriptsHandler,
		uploadsHandler:   uploadsHandler,
		analyticsHandler: analyticsHandler,
		rateLimiter:      rateLimiter,
		limits:           limits,
		metrics:          metrics,
		database:         database,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	if a.metrics != nil {
		a.router.GET("/metrics", gin.WrapH(a.metrics.Handler()))
	}

	// Public pages
	a.router.GET("/scripts", a.scriptsHandler.HandleListScripts)
	a.router.GET("/scripts/:slug", a.scriptsHandler.HandleGetScript)
	a.router.POST("/analytics",
		a.rateLimiter.Middleware("analytics", a.limits.AnalyticsRPM),
		a.analyticsHandler.HandleRecordEvent,
	)

	adminGroup := a.router.Group("/admin")
	{
		adminGroup.POST("/login",
			a.rateLimiter.Middleware("login", a.limits.LoginRPM),
			a.authHandler.HandleLogin,
		)
		adminGroup.DELETE("/login", a.authHandler.HandleLogout)
		adminGroup.GET("/check", a.authHandler.HandleCheck)
	}

	sessionGroup := a.router.Group("/admin", a.authHandler.HandleSessionMiddleware)
	{
		sessionGroup.POST("/scripts", a.scriptsHandler.HandleCreateScript)
		sessionGroup.PUT("/scripts", a.scriptsHandler.HandleUpdateScript)
		sessionGroup.DELETE("/scripts", a.scriptsHandler.HandleDeleteScript)
		sessionGroup.POST("/upload", a.uploadsHandler.HandleUpload)
		sessionGroup.GET("/dashboard", a.analyticsHandler.HandleGetDashboard)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := a.database.Ping(ctx); err != nil {
			apierrors.RespondWithError(c,
				apierrors.ServiceUnavailable(apierrors.CodeServiceUnavailable, "Database unavailable", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
