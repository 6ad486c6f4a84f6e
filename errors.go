package sqlindent

import "errors"

// Common errors used throughout the sqlindent package
var (
	// ErrConfigValidation indicates the configuration file failed validation.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrInvalidStyleName indicates the configured style name is not recognized.
	ErrInvalidStyleName = errors.New("invalid style name")
)
