// Package config loads typed settings from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files. Load returns a fresh value on
// every call; nothing is cached and the process environment is left alone,
// so tests can run in parallel with their own variable maps.
//
// # Usage
//
//	type Settings struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	    Env      string `env:"ENV" envDefault:"development"`
//	}
//
//	cfg, err := config.Load[Settings](config.WithPrefix("ENTITYCHECK_"))
//
// # Sources
//
// Values are taken from the process environment (or the map passed to
// WithEnvironment). Variables missing there are filled from DefaultEnvFile
// when it exists, or from the files named with WithEnvFiles, which must exist.
// Earlier files win over later ones.
//
// # Errors
//
//   - ErrParsingConfig: a value could not be parsed or a required variable is missing.
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read.
package config
