package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrNoTokenSignKey indicates that no JWT signing key was supplied by
	// any configuration source. The key has no default on purpose: running
	// with a well-known secret would make every issued token forgeable.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN indicates that no database connection string was
	// supplied by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
