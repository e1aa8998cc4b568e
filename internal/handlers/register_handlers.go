package handlers

import (
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/middleware"
	"github.com/SscSPs/shiftpay/internal/platform/analytics"
	"github.com/SscSPs/shiftpay/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// limiterInstance and analyticsClient may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
	analyticsClient *analytics.Client,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, limiterInstance, analyticsClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
	analyticsClient *analytics.Client,
) {
	chain := []gin.HandlerFunc{}
	if limiterInstance != nil {
		chain = append(chain, middleware.RateLimit(limiterInstance))
	}
	chain = append(chain,
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.AnalyticsMiddleware(analyticsClient),
	)
	v1 := r.Group("/api/v1", chain...)

	// Delegate route registration to specific handlers, passing required services
	registerJobRoutes(v1, service.Job)
	registerShiftRoutes(v1, service.Shift, service.ActiveShift, cfg.CountdownTick, cfg.ShiftRedetectInterval)
	registerFinancialRecordRoutes(v1, service.FinancialRecord)
	registerReportingRoutes(v1, service.Reporting)
	registerCurrencyRoutes(v1, service.Currency)
}
