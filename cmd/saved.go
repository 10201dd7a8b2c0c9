package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved quiz positions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer e.close()

		snaps, err := e.store.SnapshotRepo().List(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query snapshots: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(snaps) == 0 {
			fmt.Fprintln(out, "No saved positions.")
			return nil
		}

		current := e.bank.Fingerprint()
		fmt.Fprintf(out, "%-5s  %-19s  %-36s  %-16s  %s\n",
			"ID", "Saved", "Session", "Bank", "Question")
		fmt.Fprintln(out, strings.Repeat("─", 92))
		for _, s := range snaps {
			mark := ""
			if s.Bank == current {
				mark = " *"
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-36s  %-16s  %d%s\n",
				s.ID,
				s.Timestamp.Local().Format("2006-01-02 15:04:05"),
				s.SessionID,
				s.Bank,
				s.Data.CurrentIndex+1,
				mark,
			)
		}
		return nil
	},
}

func init() {
	savedCmd.Flags().Int("limit", 20, "Maximum number of positions to show")
}
