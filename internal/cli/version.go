package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/audiograms/pkg/audiograms"
)

const modulePath = "github.com/mesh-intelligence/audiograms"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the audiogram-admin version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "audiogram-admin %s\nmodule: %s\n", audiograms.Version, modulePath)
			return nil
		},
	}
}
