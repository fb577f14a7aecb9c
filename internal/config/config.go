// Package config handles configuration for the seeding commands:
// defaults, environment overlay, and command-line flags.
package config

import "github.com/J0SEPH-K/CardTraders-infra/internal/common"

// Config holds the storage settings shared by every seeding command.
//
// Fields:
//   - MongoURI: MongoDB connection string (mongodb:// or mongodb+srv://).
//   - DatabaseName: target database, "cardtraders" unless overridden.
type Config struct {
	MongoURI     string
	DatabaseName string
}

// LoadDefaults populates Config with development defaults. The connection
// string has no default: it must come from the environment or a flag.
func (c *Config) LoadDefaults() {
	c.MongoURI = ""
	c.DatabaseName = "cardtraders"
}

// Validate reports whether the configuration is complete enough to connect.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return common.ErrorMissingDSN
	}
	return nil
}

// LoadUserSeed builds the shared Config plus the per-run user overrides by
// applying defaults, then environment variables, then command-line flags.
func LoadUserSeed() (*Config, *UserOptions) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	opts := &UserOptions{}
	opts.LoadDefaults()
	parseUserFlags(cfg, opts)

	return cfg, opts
}

// LoadCardSeed builds the shared Config plus the per-run card overrides.
func LoadCardSeed() (*Config, *CardOptions) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	opts := &CardOptions{}
	opts.LoadDefaults()
	parseCardFlags(cfg, opts)

	return cfg, opts
}
