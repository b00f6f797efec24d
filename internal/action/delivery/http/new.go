package http

import (
	"github.com/gin-gonic/gin"

	"meeting-action-extractor/internal/action"
	"meeting-action-extractor/pkg/log"
)

// Handler is the public interface for the action HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc action.UseCase
}

// New creates a new HTTP handler for the action domain.
func New(l log.Logger, uc action.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
