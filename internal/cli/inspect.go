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
	inspectDesc = `This command lists the macro modules of an Office document.

The document is opened read-only in an invisible host instance, which is
always torn down afterwards, even when inspection fails.
`
	inspectExample = `  vbactl inspect <file>
  # List the macro modules of a workbook
  vbactl inspect Book1.xlsm

  # Enable programmatic project access for this run, reverting afterwards
  vbactl inspect Book1.xlsm --enable_vbom

  # Export each module's source next to the listing
  vbactl inspect Book1.xlsm --export_dir ./modules
`
)

func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect <file>",
		Short:   "List the macro modules of a document",
		Long:    inspectDesc,
		Example: inspectExample,
		Args:    exactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			var merr error

			flags := cc.Flags()
			enableVBOM, err := flags.GetBool("enable_vbom")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			exportDir, err := flags.GetString("export_dir")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			format, err := getOutputFormat(cc)
			if err != nil {
				return err
			}

			e := vbacmd.New(olehost.NewFactory(), regstore.New(),
				vbacmd.WithAutoEnableTrust(enableVBOM))
			e.Subscribe(func(evt any) {
				slog.Debug("engine event", slog.Any("event", evt))
			})

			res, runErr := e.Inspect(args[0])

			err = renderResult(cc, format, res)
			if err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}

			if exportDir != "" && res.Inspection != nil {
				err := exportModules(exportDir, res.Inspection.Modules)
				if err != nil {
					return err
				}
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().Bool("enable_vbom", false,
		"Enable programmatic access to the macro project for this run, reverting afterwards")
	cmd.Flags().String("export_dir", "",
		"Directory to export each module's source into")
	must(cmd.MarkFlagDirname("export_dir"))

	return cmd
}
