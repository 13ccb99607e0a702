package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/audiograms/internal/controller"
	"github.com/mesh-intelligence/audiograms/internal/page"
)

func newExperimentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "experiment",
		Aliases: []string{"audiogram"},
		Short:   "Edit audiogram experiment metadata",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "new",
			Short: "Start an empty experiment form",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, nil, func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.Experiment(p).New(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "read <audiogram-id>",
			Short: "Load an experiment into the form",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, &args[0], func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.Experiment(p).Read(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "save",
			Short: "Save the experiment in the form",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, nil, func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.Experiment(p).Save(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "create",
			Short: "Store the form as a new experiment",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, nil, func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.Experiment(p).Create(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "delete <audiogram-id>",
			Short: "Delete an experiment",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPage(cmd, &args[0], func(ctx context.Context, f controller.Factory, p *page.Page) error {
					return f.Experiment(p).Delete(ctx)
				})
			},
		},
	)
	return cmd
}
