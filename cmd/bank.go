package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquiz/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Work with question bank files",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a question bank file against the bank schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			var verr *bank.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: invalid bank\n%v\n", args[0], verr.Err)
			}
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: OK\n", args[0])
		fmt.Fprintf(out, "  title:       %s\n", b.Title)
		fmt.Fprintf(out, "  questions:   %d\n", len(b.Questions))
		fmt.Fprintf(out, "  fingerprint: %s\n", b.Fingerprint())
		return nil
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "List the questions of a bank (the built-in bank by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		b, cat, err := loadBank(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-3s  %-24s  %-6s  %s\n", "#", "ID", "Answer", "Prompt")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for i, q := range b.Questions {
			fmt.Fprintf(out, "%-3d  %-24s  %-6t  %s\n", i+1, q.PromptID, q.Answer, cat.Text(q.PromptID))
		}
		fmt.Fprintf(out, "\n%d questions\n", len(b.Questions))
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankShowCmd)
}
