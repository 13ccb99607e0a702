package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/audiograms/internal/controller"
	"github.com/mesh-intelligence/audiograms/internal/page"
)

func newPublicationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publication",
		Short: "Add and edit publications",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <doi>",
			Short: "Resolve a DOI and load its citations into the form",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, &args[0], func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.Publication(p).Create(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "read <publication-id>",
			Short: "Load a publication into the form",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, &args[0], func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.Publication(p).Read(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "save",
			Short: "Save the publication in the form",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, nil, func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.Publication(p).Save(ctx)
				})
			},
		},
	)
	return cmd
}
