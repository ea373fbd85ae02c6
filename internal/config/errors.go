package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (neither a DSN nor host+name were provided).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates invalid log settings
	// (for example, a non-positive retention window).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
