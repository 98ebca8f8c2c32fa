// Package config loads and validates the auction backend configuration.
//
// Configuration is assembled by a small builder that merges three sources
// in priority order: environment variables, command-line flags, and an
// optional JSON file whose path may itself come from either of the first
// two sources. Merging uses dario.cat/mergo, so the first source to
// provide a non-zero value for a field wins. Optional fields fall back to
// package defaults (12h token lifetime, 2-unit minimum bid increment).
package config
