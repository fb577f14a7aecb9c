package config

import (
	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the environment variables the original deployment used.
// MONGODB_URI wins over the older MONGO_URI spelling.
type envConfig struct {
	MongoURI    string `env:"MONGODB_URI"`
	MongoURIAlt string `env:"MONGO_URI"`
	DBName      string `env:"DB_NAME"`
}

// parseEnv overlays values from the environment onto cfg. Unset variables
// leave the current values untouched.
func parseEnv(cfg *Config) {
	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	switch {
	case e.MongoURI != "":
		cfg.MongoURI = e.MongoURI
	case e.MongoURIAlt != "":
		cfg.MongoURI = e.MongoURIAlt
	}

	if e.DBName != "" {
		cfg.DatabaseName = e.DBName
	}
}
