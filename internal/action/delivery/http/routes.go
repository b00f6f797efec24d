package http

import (
	"github.com/gin-gonic/gin"

	"meeting-action-extractor/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Both endpoints sit behind the per-IP rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	actions := rg.Group("/actions")
	{
		actions.POST("/extract", mw.RateLimit(), h.Extract)
		actions.POST("/export", mw.RateLimit(), h.Export)
	}
}
