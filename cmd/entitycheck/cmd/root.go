package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/entityvalidator/pkg/config"
	"github.com/dmitrymomot/entityvalidator/pkg/logger"
	"github.com/dmitrymomot/entityvalidator/pkg/registry"
)

const (
	serviceName = "entitycheck"
	envPrefix   = "ENTITYCHECK_"
)

// settings are read from ENTITYCHECK_* variables; flags override them.
type settings struct {
	LogLevel     string        `env:"LOG_LEVEL"`
	LogFormat    string        `env:"LOG_FORMAT"`
	Env          string        `env:"ENV" envDefault:"development"`
	AsyncTimeout time.Duration `env:"ASYNC_TIMEOUT" envDefault:"5s"`
}

type runIDKey struct{}

// app holds what the subcommands share once the root pre-run has finished.
type app struct {
	envFiles  []string
	logLevel  string
	logFormat string

	settings settings
	log      *slog.Logger
	registry *registry.Registry
}

// Execute runs the entitycheck command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Each call returns an independent tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   serviceName,
		Short: "Validate entity records against their registered rules",
		Long: `entitycheck validates YAML or JSON records with the validators
registered for their kind and reports the first failing rule per record.

Environment:
  ENTITYCHECK_LOG_LEVEL      debug, info, warn or error
  ENTITYCHECK_LOG_FORMAT     text or json
  ENTITYCHECK_ENV            development, staging or production
  ENTITYCHECK_ASYNC_TIMEOUT  per-record limit for --async (default 5s)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "read settings from these .env files")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override ENTITYCHECK_LOG_LEVEL")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "override ENTITYCHECK_LOG_FORMAT")

	root.AddCommand(
		newValidateCommand(a),
		newKindsCommand(a),
		newPhoneCodesCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if len(a.envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(a.envFiles...))
	}

	cfg, err := config.Load[settings](opts...)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	a.settings = cfg

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("run_id", runIDKey{}),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format := logger.Format(cfg.LogFormat)
		if format != logger.FormatJSON && format != logger.FormatText {
			return fmt.Errorf("invalid log format %q: must be %q or %q", cfg.LogFormat, logger.FormatJSON, logger.FormatText)
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	a.log = logger.New(logOpts...)

	a.registry, err = newRegistry(a.log)
	if err != nil {
		return err
	}

	cmd.SetContext(context.WithValue(cmd.Context(), runIDKey{}, uuid.NewString()))
	return nil
}
