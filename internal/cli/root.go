package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regcheck/pkg/config"
	"github.com/dmitrymomot/regcheck/pkg/environment"
	"github.com/dmitrymomot/regcheck/pkg/logger"
	"github.com/dmitrymomot/regcheck/pkg/requestid"
)

var (
	version = "dev"
	commit  = "none"
)

const serviceName = "regcheck"

// errRejected signals a rejected record under --fail. The result is already
// on stdout, so Execute does not print it again.
var errRejected = errors.New("registration rejected")

// app holds what every subcommand needs once flags and environment are resolved.
type app struct {
	cfg    Config
	logger *slog.Logger

	envFile   string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logger.Discard()}

	cmd := &cobra.Command{
		Use:   "regcheck",
		Short: "Validate user registration records",
		Long: "regcheck validates user registration records (name, age, email, employment " +
			"and postal address) and prints either the canonical record or a single-line validation error.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "read environment variables from this file before loading configuration")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json (overrides LOG_FORMAT)")

	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newExamplesCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger.
// Logs always go to stderr so stdout carries only results.
func (a *app) setup(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return fmt.Errorf("invalid log format %q: must be %q or %q", cfg.LogFormat, logger.FormatText, logger.FormatJSON)
	}

	env := environment.Parse(cfg.Env)
	a.cfg = cfg
	a.logger = logger.New(
		logger.WithEnvironment(env.String(), serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(slog.String("command", cmd.Name())),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	a.logger.DebugContext(cmd.Context(), "configuration loaded",
		slog.Int64("max_input_bytes", cfg.MaxInputBytes),
		slog.Bool("legacy_keys", cfg.LegacyKeys),
	)
	return nil
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the command line and prints any error to stderr.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errRejected) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}
