package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be within [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.validateStorage(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Resolver.validate(); err != nil {
		return fmt.Errorf("resolver: %w", err)
	}

	return nil
}

func (c *Config) validateStorage() error {
	if c.Storage.OpTimeout <= 0 {
		return fmt.Errorf("op_timeout must be > 0 (got %v)", c.Storage.OpTimeout)
	}

	switch c.Storage.Driver {
	case DriverEmbedded:
		if c.Storage.SQLitePath == "" {
			return errors.New("sqlite_path is required for the embedded driver")
		}
	case DriverNetworked:
		if c.Database.DSN == "" {
			return errors.New("database.dsn is required for the networked driver")
		}
		if c.Database.MaxConns <= 0 {
			return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", c.Storage.Driver, DriverEmbedded, DriverNetworked)
	}

	return nil
}

func (r *ResolverConfig) validate() error {
	if r.StageTimeout <= 0 {
		return fmt.Errorf("stage_timeout must be > 0 (got %v)", r.StageTimeout)
	}
	for name, raw := range map[string]string{"summary_url": r.SummaryURL, "search_url": r.SearchURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL (got %q)", name, raw)
		}
	}
	return nil
}
