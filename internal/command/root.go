package command

import (
	"errors"
	"log/slog"

	"github.com/slashdevops/hostid"
	"github.com/slashdevops/hostid/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

var ErrNoMachineID = errors.New("no machine ID available on this host")

type rootOptions struct {
	debug       bool
	logFilePath string

	logger *zap.Logger

	// resolver overrides the platform resolver; tests only.
	resolver hostid.PlatformResolver
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	var get getOptions

	command := &cobra.Command{
		Use:           "hostid",
		Short:         "Print the machine identifier maintained by the operating system",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Full(),
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := createLogger(opts.debug, opts.logFilePath)
			if err != nil {
				return err
			}
			opts.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, opts, &get)
		},
	}

	command.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	command.PersistentFlags().StringVar(&opts.logFilePath, "log-file", "",
		"optional path to a file where logs (up to 10 Mb) will be written")
	get.register(command)

	command.AddCommand(
		newGetCommand(opts),
		newValidateCommand(opts),
		newBenchCommand(opts),
	)

	return command
}

// provider builds a hostid.Provider that logs through the command's zap logger.
func (opts *rootOptions) provider() *hostid.Provider {
	provider := hostid.New()

	if opts.logger != nil {
		provider.WithLogger(slog.New(zapslog.NewHandler(opts.logger.Core())))
	}

	if opts.resolver != nil {
		provider.WithResolver(opts.resolver)
	}

	return provider
}

// zapLogger never returns nil so commands can log before PersistentPreRunE
// has run, e.g. when invoked directly from tests.
func (opts *rootOptions) zapLogger() *zap.Logger {
	if opts.logger == nil {
		return zap.NewNop()
	}

	return opts.logger
}
