package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Multiple
// failures are reported together via errors.Join.
var (
	// ErrNoServerAddress is returned when no HTTP listen address was
	// provided by any configuration source.
	ErrNoServerAddress = errors.New("server address is not specified")

	// ErrNoDatabaseDSN is returned when no PostgreSQL DSN was provided.
	ErrNoDatabaseDSN = errors.New("database DSN is not specified")

	// ErrNoTokenSignKey is returned when the JWT signing secret is missing.
	// The server refuses to start rather than fall back to a guessable key.
	ErrNoTokenSignKey = errors.New("token sign key is not specified")

	// ErrNegativeBidIncrement is returned when the configured minimum bid
	// increment is negative.
	ErrNegativeBidIncrement = errors.New("minimum bid increment must not be negative")
)
