package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing server address or a
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidJobConfigs indicates a job without experiment, or a registry
	// without a model to register.
	ErrInvalidJobConfigs = errors.New("invalid job configuration")
)
