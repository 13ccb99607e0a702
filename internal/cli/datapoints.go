package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/audiograms/internal/controller"
	"github.com/mesh-intelligence/audiograms/internal/page"
)

func newDataPointsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datapoints",
		Short: "Edit the data points of an audiogram",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "read <audiogram-id>",
			Short: "Load the data points of an audiogram into the form",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, &args[0], func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.DataPoints(p).Read(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "trash <data-point-id>",
			Short: "Mark a data point for deletion, or unmark it",
			Long:  "Trash toggles the deletion mark of a data point row in the form.\nNothing is sent until save.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid data point id %q", args[0])
				}
				return runPage(cmd, nil, func(_ context.Context, f controller.Factory, p *page.Page) error {
					return f.DataPoints(p).TrashToggle(id)
				})
			},
		},
		&cobra.Command{
			Use:   "save",
			Short: "Send every new, edited and trashed data point",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, nil, func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.DataPoints(p).Save(ctx)
				})
			},
		},
		newSetCmd(),
	)
	return cmd
}
