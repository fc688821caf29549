package task

import "errors"

var (
	// ErrUnknownEntityType indicates a classification with an unsupported entity type.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrUnknownFilterType indicates a classification with an unsupported filter type.
	ErrUnknownFilterType = errors.New("unknown filter type")

	// ErrMemberNotFound indicates the person reference did not resolve against the roster.
	ErrMemberNotFound = errors.New("member not found in directory")

	// ErrDepartmentNotFound indicates the department name is not configured.
	ErrDepartmentNotFound = errors.New("department not found in directory")

	// ErrUnknownPeriod indicates an unsupported time-tracking period.
	ErrUnknownPeriod = errors.New("unknown time tracking period")
)
