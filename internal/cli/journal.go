package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/audiograms/internal/journal"
)

const defaultJournalLimit = 20

func newJournalCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List the mutating calls sent to the admin API",
		Long: `Journal lists the local audit trail of saves, creations and deletions,
newest first. A limit of 0 lists every entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournal(cmd, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", defaultJournalLimit, "number of entries to list")
	return cmd
}

func runJournal(cmd *cobra.Command, limit int) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysErr(err)
	}
	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return sysErr(err)
	}
	defer j.Close()

	entries, err := j.List(cmd.Context(), limit)
	if err != nil {
		return sysErr(err)
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		if entries == nil {
			entries = []journal.Entry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal entries: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No journal entries")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tOPERATION\tENTITY\tRESULT\tMESSAGE")
	for _, e := range entries {
		result := "ok"
		if !e.OK {
			result = "failed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.RecordedAt.Local().Format(time.DateTime), e.Operation, e.EntityID, result, e.Message)
	}
	return tw.Flush()
}
