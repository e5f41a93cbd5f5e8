package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oleworks/vbactl/internal/version"
)

// GetVersionString returns the version string for the CLI.
func GetVersionString() string {
	return fmt.Sprintf("%s+%s", version.Version, version.Revision)
}

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the vbactl CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(GetVersionString())
		},
	}
}
