package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/audiograms/internal/controller"
	"github.com/mesh-intelligence/audiograms/internal/page"
)

func newTaxonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxon",
		Short: "Add species from the Open Tree of Life",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "retrieve <latin name>",
			Short: "Load the lineage of a species into the form",
			Example: "  audiogram-admin taxon retrieve Phoca vitulina\n" +
				"  audiogram-admin taxon retrieve \"Phocoena phocoena\"",
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := strings.Join(args, " ")
				return runPage(cmd, &name, func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.Taxonomy(p).Create(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "save",
			Short: "Add the lineage in the form to the database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, nil, func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.Taxonomy(p).Save(ctx)
				})
			},
		},
	)
	return cmd
}
