package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"clickup-task-assistant/internal/model"
	pkgLog "clickup-task-assistant/pkg/log"
	pkgResponse "clickup-task-assistant/pkg/response"
	pkgTelegram "clickup-task-assistant/pkg/telegram"
)

// secretTokenHeader carries the webhook secret Telegram echoes back on every
// delivery.
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

type handler struct {
	l           pkgLog.Logger
	bot         *pkgTelegram.Bot
	orch        Orchestrator
	secretToken string
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine to avoid Telegram webhook timeout (the pipeline of
// LLM turns plus ClickUp pagination can take 5-10s).
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" && c.GetHeader(secretTokenHeader) != h.secretToken {
		h.l.Warnf(ctx, "telegram handler: webhook secret token mismatch")
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on
	// gin context
	msg := update.Message

	// Process in goroutine, return 200 immediately to Telegram
	go func() {
		// Detach from the HTTP request context, which gets cancelled after
		// the response
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" || msg.From == nil {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendHTML(msg.Chat.ID, welcomeMessage)
	case "/help":
		return h.bot.SendHTML(msg.Chat.ID, helpMessage)
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
		ChatID:   msg.Chat.ID,
	}

	answer, err := h.orch.HandleMessage(ctx, sc, msg.Text)
	if err != nil {
		// The answer is still user-presentable; the error carries the
		// underlying cause worth logging, not a reason to swallow the reply.
		h.l.Warnf(ctx, "telegram handler: orchestrator returned error: %v", err)
	}
	if answer == "" {
		return nil
	}

	return h.bot.SendHTML(msg.Chat.ID, answer)
}
