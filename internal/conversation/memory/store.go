package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"clickup-task-assistant/internal/conversation"
)

const (
	// MaxUsers bounds how many users' conversations are kept in memory.
	MaxUsers = 1000

	// MaxMessagesPerUser bounds the per-user history window; older messages
	// are discarded.
	MaxMessagesPerUser = 50

	// SessionTTL is how long an idle user's data survives.
	SessionTTL = 24 * time.Hour
)

type userRecord struct {
	messages []conversation.StoredMessage
	state    conversation.SessionState
}

// Store is an in-memory conversation.Store backed by an expiring LRU.
// It is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	users *expirable.LRU[string, *userRecord]
}

// New creates an in-memory store.
func New() *Store {
	return &Store{
		users: expirable.NewLRU[string, *userRecord](MaxUsers, nil, SessionTTL),
	}
}

func (s *Store) record(userID string) *userRecord {
	rec, ok := s.users.Get(userID)
	if !ok {
		rec = &userRecord{}
		s.users.Add(userID, rec)
	}
	return rec
}

// GetRecentMessages implements conversation.Store.
func (s *Store) GetRecentMessages(ctx context.Context, userID string, limit int) ([]conversation.StoredMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(userID)
	msgs := rec.messages
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}

	out := make([]conversation.StoredMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

// SaveMessage implements conversation.Store.
func (s *Store) SaveMessage(ctx context.Context, userID string, role conversation.Role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(userID)
	rec.messages = append(rec.messages, conversation.StoredMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if len(rec.messages) > MaxMessagesPerUser {
		rec.messages = rec.messages[len(rec.messages)-MaxMessagesPerUser:]
	}
	return nil
}

// GetState implements conversation.Store.
func (s *Store) GetState(ctx context.Context, userID string) (conversation.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.record(userID).state, nil
}

// UpdateState implements conversation.Store.
func (s *Store) UpdateState(ctx context.Context, userID string, patch conversation.StatePatch) (conversation.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(userID)
	rec.state.Apply(patch)
	return rec.state, nil
}
