package cli

import (
	"context"
	"errors"
	"os"

	"github.com/anoideaopen/commandline/core"
	"github.com/anoideaopen/commandline/core/logger"
	"github.com/anoideaopen/commandline/core/routing"
	"github.com/anoideaopen/commandline/core/telemetry"
	"github.com/anoideaopen/commandline/internal/config"
	"github.com/anoideaopen/commandline/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrCommandFailed is returned when the dispatched command reports failure.
var ErrCommandFailed = errors.New("command reported failure")

// NewRootCommand builds the root command dispatching to types.
func NewRootCommand(types ...*routing.Type) *cobra.Command {
	var (
		v          = viper.New()
		configFile string
		list       bool
	)

	cmd := &cobra.Command{
		Use:   "commandline [flags] TYPE.METHOD [/Name:Value ...]",
		Short: "Run a registered command",
		Long: `commandline resolves TYPE.METHOD (or a bare METHOD) among the registered types,
binds /Name:Value options and positional values to its parameters and runs it.
Results are printed one per line.`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			log.SetOutput(cmd.ErrOrStderr())

			shutdown, err := telemetry.InstallTraceProvider(cfg.CollectorEndpoint(), cfg.Trace.ServiceName)
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.WithError(err).Warn("trace provider shutdown")
				}
			}()

			registry, err := routing.NewRegistry(types...)
			if err != nil {
				return err
			}

			d := core.NewDispatcher(registry,
				core.WithSyntax(cfg.CommandSyntax()),
				core.WithLogger(logrus.NewEntry(log)),
			)

			if list {
				return printCommands(cmd.OutOrStdout(), d.Commands())
			}

			return dispatch(cmd, d, cfg, args)
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVar(&configFile, "config", "", "path to a YAML config file")
	flags.BoolVar(&list, "list", false, "list the registered commands")
	flags.String("log-level", "", "log level (trace, debug, info, warning, error)")
	flags.String("log-format", "", "log format (text, json)")
	flags.String("trace-endpoint", "", "OTLP/HTTP collector host:port")
	flags.StringP("output", "o", "", "output format (json, yaml)")

	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = v.BindPFlag(config.KeyTraceEndpoint, flags.Lookup("trace-endpoint"))
	_ = v.BindPFlag(config.KeyOutput, flags.Lookup("output"))

	return cmd
}

func dispatch(cmd *cobra.Command, d *core.Dispatcher, cfg *config.Config, args []string) error {
	ctx := telemetry.NewTracingHandler(nil).ContextFromEnv(cmd.Context(), os.Environ())

	c, err := d.Parse(args...)
	if err != nil {
		return err
	}

	result, err := d.Execute(ctx, c)
	if err != nil {
		return err
	}

	if err = writeOutputs(cmd.OutOrStdout(), cfg.Output, result.Outputs); err != nil {
		return err
	}

	if !result.Success {
		return ErrCommandFailed
	}

	return nil
}

// Execute runs the root command with the builtin types and build info injected via ldflags.
func Execute(buildVersion, buildCommit, buildDate string) error {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate

	return NewRootCommand(Builtin()...).Execute()
}
