package telegram

import (
	"github.com/gin-gonic/gin"

	"meeting-action-extractor/internal/action"
	pkgLog "meeting-action-extractor/pkg/log"
	pkgTelegram "meeting-action-extractor/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc action.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
