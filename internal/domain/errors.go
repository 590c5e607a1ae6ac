package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrApplicationNotFound = errors.New("application not found")
)

var (
	ErrAuthRequired    = errors.New("authentication required")
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

var (
	ErrAlreadyApplied = errors.New("user already has an application for this event")
)

var (
	ErrValidation = errors.New("validation error")
)
