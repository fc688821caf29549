package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"clickup-task-assistant/internal/model"
	pkgLog "clickup-task-assistant/pkg/log"
	pkgTelegram "clickup-task-assistant/pkg/telegram"
)

// Orchestrator is the conversational entry point consumed by this handler.
type Orchestrator interface {
	HandleMessage(ctx context.Context, sc model.Scope, text string) (string, error)
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	bot *pkgTelegram.Bot,
	orch Orchestrator,
	secretToken string,
) Handler {
	return &handler{
		l:           l,
		bot:         bot,
		orch:        orch,
		secretToken: secretToken,
	}
}
