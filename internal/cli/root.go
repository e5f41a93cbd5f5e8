package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/oleworks/vbactl/pkg/log"
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().String("log_level", defaultEnv("VBACTL_LOG_LEVEL", "warn"),
		"Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", defaultEnv("VBACTL_LOG_FORMAT", "text"),
		"Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringP("output", "o", "",
		"Set the output format (text, json, yaml; defaults to text on a terminal, json when piped)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	})

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewRemoveCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func defaultEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

// exactArgs is [cobra.ExactArgs] with the error classified as an invalid
// argument for exit-status mapping.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := cobra.ExactArgs(n)(cmd, args)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}

		return nil
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
