package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"clickup-task-assistant/config"
	_ "clickup-task-assistant/docs" // Swagger docs
	"clickup-task-assistant/internal/agent"
	"clickup-task-assistant/internal/agent/orchestrator"
	"clickup-task-assistant/internal/agent/tools"
	"clickup-task-assistant/internal/conversation/memory"
	"clickup-task-assistant/internal/directory"
	"clickup-task-assistant/internal/httpserver"
	tgDelivery "clickup-task-assistant/internal/task/delivery/telegram"
	clickupRepo "clickup-task-assistant/internal/task/repository/clickup"
	"clickup-task-assistant/internal/task/usecase"
	"clickup-task-assistant/pkg/datemath"
	"clickup-task-assistant/pkg/llmprovider"
	"clickup-task-assistant/pkg/log"
	"clickup-task-assistant/pkg/openai"
	"clickup-task-assistant/pkg/telegram"
)

// @title       ClickUp Task Assistant API
// @description Conversational assistant answering team task questions from ClickUp over Telegram.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ClickUp Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Static team directory
	dir, err := directory.Load(cfg.Directory.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to load team directory from %s: %v", cfg.Directory.Path, err)
		return
	}
	logger.Infof(ctx, "Team directory loaded: %d members, %d departments",
		dir.Size(), len(dir.Departments))

	// 4. DateMath parser in the team timezone
	timezone := cfg.ClickUp.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dateMathParser, _ = datemath.NewParser(timezone)
	}

	// 5. ClickUp repository and task use case
	clickupClient := clickupRepo.NewClient(cfg.ClickUp.BaseURL, cfg.ClickUp.APIToken)
	trackerRepo := clickupRepo.New(clickupClient, cfg.ClickUp.TeamID, logger)
	taskUC := usecase.New(logger, trackerRepo, dir, dateMathParser)

	// 6. Conversation store
	store := memory.New()

	// 7. LLM providers, highest priority first
	llmManager, err := buildLLMManager(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}

	// 8. Agent tool palette and orchestrator
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewLoadAndFilterTasksTool(taskUC))
	registry.Register(tools.NewUpdateContextTool(store))
	registry.Register(tools.NewGetTimeTrackedTool(taskUC))

	orch := orchestrator.New(llmManager, registry, store, dir, taskUC, logger, timezone)

	// 9. Telegram delivery
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, telegramBot, orch, cfg.Telegram.SecretToken)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL, cfg.Telegram.SecretToken); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildLLMManager turns configured providers into a fallback chain.
func buildLLMManager(ctx context.Context, cfg *config.Config, logger log.Logger) (*llmprovider.Manager, error) {
	providerCfgs := make([]config.ProviderConfig, 0, len(cfg.LLM.Providers))
	for _, p := range cfg.LLM.Providers {
		if p.Enabled {
			providerCfgs = append(providerCfgs, p)
		}
	}
	sort.SliceStable(providerCfgs, func(i, j int) bool {
		return providerCfgs[i].Priority < providerCfgs[j].Priority
	})

	var providers []llmprovider.Provider
	for _, p := range providerCfgs {
		timeout := parseDurationOr(p.Timeout, openai.DefaultTimeout)
		client, err := openai.New(openai.Config{
			APIKey:     p.APIKey,
			Model:      p.Model,
			BaseURL:    p.BaseURL,
			HTTPClient: &http.Client{Timeout: timeout},
		})
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", p.Name, err)
		}
		providers = append(providers, llmprovider.NewOpenAIAdapter(client))
		logger.Infof(ctx, "LLM provider registered: %s model=%s priority=%d", p.Name, p.Model, p.Priority)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no enabled LLM providers")
	}

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger), nil
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
