package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

// API error codes returned in the error envelope. These are stable strings
// documented by the provider; classification relies on them rather than on
// HTTP status alone.
const (
	ErrCodeInsufficientQuota = "insufficient_quota"
	ErrCodeRateLimited       = "rate_limit_exceeded"
	ErrCodeInvalidAPIKey     = "invalid_api_key"
	ErrCodeModelNotFound     = "model_not_found"
)
