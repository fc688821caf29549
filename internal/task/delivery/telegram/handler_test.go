package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"clickup-task-assistant/internal/model"
	"clickup-task-assistant/internal/task/delivery/telegram"
	pkgTelegram "clickup-task-assistant/pkg/telegram"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockOrchestrator struct {
	mu     sync.Mutex
	answer string
	calls  []string
	scopes []model.Scope
}

func (m *mockOrchestrator) HandleMessage(ctx context.Context, sc model.Scope, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, text)
	m.scopes = append(m.scopes, sc)
	return m.answer, nil
}

func (m *mockOrchestrator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// fakeTelegramAPI records every sendMessage payload.
type fakeTelegramAPI struct {
	mu       sync.Mutex
	requests []pkgTelegram.SendMessageRequest
	server   *httptest.Server
}

func newFakeTelegramAPI() *fakeTelegramAPI {
	f := &fakeTelegramAPI{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pkgTelegram.SendMessageRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.requests = append(f.requests, req)
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	return f
}

func (f *fakeTelegramAPI) sent() []pkgTelegram.SendMessageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]pkgTelegram.SendMessageRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

func newTestRouter(orch telegram.Orchestrator, secretToken string) (*gin.Engine, *fakeTelegramAPI) {
	gin.SetMode(gin.TestMode)

	api := newFakeTelegramAPI()
	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(api.server.URL)

	h := telegram.New(&mockLogger{}, bot, orch, secretToken)

	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)
	return r, api
}

func postUpdate(t *testing.T, r *gin.Engine, update pkgTelegram.Update, secret string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(update)
	if err != nil {
		t.Fatalf("marshal update: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Telegram-Bot-Api-Secret-Token", secret)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func textUpdate(text string) pkgTelegram.Update {
	return pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 10,
			From:      &pkgTelegram.User{ID: 77, Username: "tester"},
			Chat:      &pkgTelegram.Chat{ID: 555},
			Text:      text,
		},
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestWebhookAcksImmediatelyAndAnswers(t *testing.T) {
	orch := &mockOrchestrator{answer: "<b>report</b>"}
	r, api := newTestRouter(orch, "")

	w := postUpdate(t, r, textUpdate("task quá hạn của An?"), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	waitFor(t, func() bool { return len(api.sent()) == 1 })

	sent := api.sent()[0]
	if sent.ChatID != 555 || sent.Text != "<b>report</b>" || sent.ParseMode != "HTML" {
		t.Errorf("sent = %+v", sent)
	}
	if orch.callCount() != 1 {
		t.Errorf("orchestrator called %d times, want 1", orch.callCount())
	}
	orch.mu.Lock()
	sc := orch.scopes[0]
	orch.mu.Unlock()
	if sc.UserID != "telegram_77" || sc.ChatID != 555 {
		t.Errorf("scope = %+v", sc)
	}
}

func TestWebhookRejectsBadSecretToken(t *testing.T) {
	orch := &mockOrchestrator{answer: "x"}
	r, _ := newTestRouter(orch, "s3cret")

	w := postUpdate(t, r, textUpdate("hello"), "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if orch.callCount() != 0 {
		t.Errorf("orchestrator called despite bad secret")
	}
}

func TestWebhookIgnoresNonMessageUpdates(t *testing.T) {
	orch := &mockOrchestrator{}
	r, api := newTestRouter(orch, "")

	w := postUpdate(t, r, pkgTelegram.Update{UpdateID: 2}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	time.Sleep(50 * time.Millisecond)
	if orch.callCount() != 0 || len(api.sent()) != 0 {
		t.Error("non-message update reached the pipeline")
	}
}

func TestStartCommandSkipsOrchestrator(t *testing.T) {
	orch := &mockOrchestrator{}
	r, api := newTestRouter(orch, "")

	postUpdate(t, r, textUpdate("/start"), "")
	waitFor(t, func() bool { return len(api.sent()) == 1 })

	if orch.callCount() != 0 {
		t.Errorf("orchestrator called for /start")
	}
	if api.sent()[0].ParseMode != "HTML" {
		t.Errorf("welcome message not sent as HTML: %+v", api.sent()[0])
	}
}
