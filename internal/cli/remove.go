package cli

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/oleworks/vbactl/pkg/olehost"
	"github.com/oleworks/vbactl/pkg/regstore"
	"github.com/oleworks/vbactl/pkg/vbacmd"
)

const (
	removeDesc = `This command removes one macro module from an Office document.

The document is opened writable, the module is detached, and the document is
saved exactly once. Document-bound components (a workbook root, a worksheet,
the document body) cannot be detached and are reported as protected. The host
is always torn down afterwards, even when removal fails.
`
	removeExample = `  vbactl remove <file> --module <name>
  # Remove a standard module from a workbook
  vbactl remove Book1.xlsm --module Module1

  # Enable programmatic project access for this run, reverting afterwards
  vbactl remove Book1.xlsm --module Module1 --enable_vbom

  # Report what a removal would do without changing the document
  vbactl remove Book1.xlsm --module Module1 --dry_run
`
)

func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <file>",
		Short:   "Remove a macro module from a document",
		Long:    removeDesc,
		Example: removeExample,
		Args:    exactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			var merr error

			flags := cc.Flags()
			module, err := flags.GetString("module")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			enableVBOM, err := flags.GetBool("enable_vbom")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			dryRun, err := flags.GetBool("dry_run")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			if module == "" {
				merr = multierror.Append(merr, fmt.Errorf("required flag %q not set", "module"))
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			format, err := getOutputFormat(cc)
			if err != nil {
				return err
			}

			e := vbacmd.New(olehost.NewFactory(), regstore.New(),
				vbacmd.WithAutoEnableTrust(enableVBOM),
				vbacmd.WithDryRun(dryRun))
			e.Subscribe(func(evt any) {
				slog.Debug("engine event", slog.Any("event", evt))
			})

			res, runErr := e.Remove(args[0], module)

			err = renderResult(cc, format, res)
			if err != nil {
				return err
			}

			return runErr
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringP("module", "m", "",
		"Name of the module to remove (required)")
	cmd.Flags().Bool("enable_vbom", false,
		"Enable programmatic access to the macro project for this run, reverting afterwards")
	cmd.Flags().Bool("dry_run", false,
		"Report what would be removed without changing the document")

	return cmd
}
