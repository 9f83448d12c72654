package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when it exists and no other files are requested.
const DefaultEnvFile = ".env"

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "ENTITYCHECK_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles reads the given .env files instead of DefaultEnvFile.
// Unlike the default file they must exist.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// WithEnvironment replaces the process environment as the source of values.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		if vars != nil {
			o.environment = vars
		}
	}
}

// Load parses the environment into a new T using its env struct tags.
//
// Values from .env files fill only variables that are not already set, so the
// real environment always wins. The process environment is never modified.
//
// Example:
//
//	type Settings struct {
//		LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
//		Timeout  time.Duration `env:"ASYNC_TIMEOUT" envDefault:"5s"`
//	}
//
//	cfg, err := config.Load[Settings](config.WithPrefix("ENTITYCHECK_"))
func Load[T any](opts ...Option) (T, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	vars, err := o.resolve()
	if err != nil {
		var zero T
		return zero, err
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{
		Prefix:      o.prefix,
		Environment: vars,
	})
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func (o options) resolve() (map[string]string, error) {
	vars := o.environment
	if vars == nil {
		vars = env.ToMap(os.Environ())
	} else {
		vars = maps.Clone(vars)
	}

	files, required := o.files, true
	if len(files) == 0 {
		files, required = []string{DefaultEnvFile}, false
	}

	for _, path := range files {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			if !required && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, v := range fileVars {
			if _, set := vars[k]; !set {
				vars[k] = v
			}
		}
	}
	return vars, nil
}
