package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GET /health
func Health(c *gin.Context) {
	b, ok := backend(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := b.Ping(ctx); err != nil {
		zap.L().Warn("health: banco indisponível", zap.Error(err))
		RespondError(c, "unavailable", http.StatusServiceUnavailable)
		return
	}
	c.String(http.StatusOK, "ok")
}
