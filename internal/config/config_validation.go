package config

import "errors"

// validate checks that every setting required to start the server is
// present and sane. Called as the last step of the config builder.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Server.HTTPAddress == "" {
		errs = append(errs, ErrNoServerAddress)
	}
	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if c.App.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	if c.App.MinimumBidIncrement.IsNegative() {
		errs = append(errs, ErrNegativeBidIncrement)
	}

	return errors.Join(errs...)
}
