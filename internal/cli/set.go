package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/audiograms/internal/page"
)

// errEmptyForm is returned when set finds no displayed form to edit.
var errEmptyForm = errors.New("form is empty, read a record first")

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field-id> <value>",
		Short: "Change one field of the form",
		Long: `Set changes the value of an input, text area or pull-down in the form file.
Pull-down values must be one of the listed options. Disabled fields, such as
those of a trashed data point, cannot be changed. Setting edit_id changes
the id a later read uses.`,
		Example: "  audiogram-admin set sex female\n" +
			"  audiogram-admin datapoints set datapoint_new_testtone_frequency_in_khz 2.5",
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	field, value := args[0], args[1]

	p, err := page.Load(flags.formPath)
	if err != nil {
		return sysErr(err)
	}
	switch {
	case field == page.FieldEditID:
		p.EditID = value
	case p.Output == nil:
		return fmt.Errorf("%s: %w", flags.formPath, errEmptyForm)
	default:
		if err := p.Output.SetValue(field, value); err != nil {
			return fmt.Errorf("set %s: %w", field, err)
		}
	}
	if err := p.Store(flags.formPath); err != nil {
		return sysErr(err)
	}

	if flags.jsonMode {
		data, err := json.Marshal(map[string]string{"field": field, "value": value})
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", field, value)
	return nil
}
