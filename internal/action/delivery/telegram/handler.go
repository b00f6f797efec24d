package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-action-extractor/internal/action"
	"meeting-action-extractor/internal/model"
	pkgLog "meeting-action-extractor/pkg/log"
	pkgResponse "meeting-action-extractor/pkg/response"
	pkgTelegram "meeting-action-extractor/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  action.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine, because Telegram expects an answer within a few
// seconds while an LLM extraction can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.) and messages
	// without a chat to reply to.
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which gets cancelled after response
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while processing your notes. Please try again.")
		}
	}()

	// Telegram acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"Welcome to *Meeting Action Extractor*!\n\nPaste your meeting notes and I will pull out the action items: who does what, by when, and how urgent it is.",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*How to use:*\n\nSend meeting notes as plain text, for example:\n`John will update the deployment guide by Friday. Sarah should review the budget ASAP.`\n\nI reply with a table of extracted action items.",
			"Markdown",
		)
	}

	// Telegram omits "from" for channel posts and anonymous admins.
	sc := model.Scope{RequestID: uuid.NewString()}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	} else if msg.Chat != nil {
		sc.UserID = fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)
	}

	output, err := h.uc.Extract(ctx, sc, action.ExtractInput{Notes: msg.Text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Extract failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("Could not process the notes: %v", err))
	}

	if output.Count == 0 {
		return h.bot.SendMessage(msg.Chat.ID, "No action items found in that message. Try notes with assignees, deadlines, or bullet points.")
	}

	return h.bot.SendMessageWithMode(msg.Chat.ID, buildReply(output), "Markdown")
}

// buildReply formats the extraction result as a Telegram Markdown message.
func buildReply(out action.ExtractOutput) string {
	reply := fmt.Sprintf("Found *%d action item(s)*:\n\n", out.Count)
	for i, item := range out.Items {
		reply += fmt.Sprintf("%d. *%s*", i+1, item.Task)
		if item.Assignee != nil {
			reply += fmt.Sprintf("\n   Assignee: %s", *item.Assignee)
		}
		if item.DueDate != nil {
			reply += fmt.Sprintf("\n   Due: %s", *item.DueDate)
		}
		reply += fmt.Sprintf("\n   Priority: %s\n\n", item.Priority)
	}
	return reply
}
