//go:build !swagger

package handlers

import (
	"github.com/SscSPs/shiftpay/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// setupSwaggerRoutes is a no-op unless built with -tags swagger.
func setupSwaggerRoutes(*gin.Engine, *config.Config) {}
