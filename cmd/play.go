package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz straight away",
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, _ := cmd.Flags().GetBool("resume")
		return runApp(cmd, true, resume)
	},
}

func init() {
	playCmd.Flags().Bool("resume", false, "Continue from the last saved position for this bank")
}
