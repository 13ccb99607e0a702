package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/audiograms/internal/controller"
	"github.com/mesh-intelligence/audiograms/internal/page"
)

func newAnimalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animal",
		Short: "Edit the animal tested in an audiogram",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "read <audiogram-id>",
		Short: "Load the animal of an audiogram into the form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, &args[0], func(ctx context.Context, f controller.Factory, p *page.Page) error {
				return f.Animal(p).Read(ctx)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Save the animal in the form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, nil, func(ctx context.Context, f controller.Factory, p *page.Page) error {
				return f.Animal(p).Save(ctx)
			})
		},
	})
	return cmd
}
