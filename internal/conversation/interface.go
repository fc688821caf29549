package conversation

import "context"

// Store is the durable conversation and session-state store. The assistant
// reads only a bounded recent window; retention is the store's concern, and
// per-user read-your-writes consistency is assumed.
type Store interface {
	// GetRecentMessages returns up to limit most recent messages for the
	// user, ordered oldest-first.
	GetRecentMessages(ctx context.Context, userID string, limit int) ([]StoredMessage, error)

	// SaveMessage appends a message to the user's history.
	SaveMessage(ctx context.Context, userID string, role Role, content string) error

	// GetState returns the user's session state, creating an empty one on
	// first lookup.
	GetState(ctx context.Context, userID string) (SessionState, error)

	// UpdateState merges the patch into the user's session state and returns
	// the result.
	UpdateState(ctx context.Context, userID string, patch StatePatch) (SessionState, error)
}
