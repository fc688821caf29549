package openai

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the completion API with a parsed
// error envelope. The Code field carries the provider's stable error code.
type APIError struct {
	StatusCode int
	Code       string
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai: API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// asAPIError extracts an *APIError from err, if present.
func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsQuotaExceeded reports whether err is an exhausted-quota API error.
func IsQuotaExceeded(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Code == ErrCodeInsufficientQuota
}

// IsRateLimited reports whether err is a rate-limit API error. A 429 without
// a quota code also counts: some compatible providers omit the code field on
// throttled requests.
func IsRateLimited(err error) bool {
	apiErr, ok := asAPIError(err)
	if !ok {
		return false
	}
	if apiErr.Code == ErrCodeRateLimited {
		return true
	}
	return apiErr.StatusCode == 429 && apiErr.Code != ErrCodeInsufficientQuota
}

// IsInvalidAPIKey reports whether err is an invalid-credential API error.
func IsInvalidAPIKey(err error) bool {
	apiErr, ok := asAPIError(err)
	if !ok {
		return false
	}
	return apiErr.Code == ErrCodeInvalidAPIKey || apiErr.StatusCode == 401
}

// IsModelNotFound reports whether err is a model-not-found API error.
func IsModelNotFound(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Code == ErrCodeModelNotFound
}
