package conversation

import "time"

// Role is the author of a stored message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// StoredMessage is one turn of a user's conversation, append-only.
type StoredMessage struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// SessionState is the per-user context carried between messages so that
// pronoun-only follow-ups can be resolved without re-classification.
type SessionState struct {
	Department     string
	LastReportType string
	LastPersonID   string
	LastPersonName string
}

// StatePatch is a partial update to SessionState; nil fields are left as-is.
type StatePatch struct {
	Department     *string
	LastReportType *string
	LastPersonID   *string
	LastPersonName *string
}

// Apply merges the patch into s.
func (s *SessionState) Apply(p StatePatch) {
	if p.Department != nil {
		s.Department = *p.Department
	}
	if p.LastReportType != nil {
		s.LastReportType = *p.LastReportType
	}
	if p.LastPersonID != nil {
		s.LastPersonID = *p.LastPersonID
	}
	if p.LastPersonName != nil {
		s.LastPersonName = *p.LastPersonName
	}
}

// Ptr is a small helper for building patches.
func Ptr[T any](v T) *T { return &v }
