//go:build swagger

package handlers

import (
	"github.com/SscSPs/shiftpay/cmd/docs"
	"github.com/SscSPs/shiftpay/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// setupSwaggerRoutes configures the swagger documentation routes.
// cmd/docs is generated by `go generate ./cmd/shiftpay_backend`.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
