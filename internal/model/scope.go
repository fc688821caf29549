package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the requesting user for a single message.
type Scope struct {
	UserID   string // stable per-user key, e.g. "telegram_12345"
	Username string
	ChatID   int64
}
