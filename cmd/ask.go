package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/geoquiz/internal/catalog"
	"github.com/abhisek/geoquiz/internal/quiz"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Take the quiz as a plain line-by-line prompt",
	Long: `Take the quiz without the full-screen UI. Type one command per line:
  t, true      answer true
  f, false     answer false
  n, next      next question
  p, prev      previous question
  c, cycle     next question, wrapping to the first
  q, quit      stop`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer e.close()

		ctrl, err := quiz.NewController(e.bank.Questions)
		if err != nil {
			return err
		}
		sh := &askShell{ctrl: ctrl, catalog: e.catalog, logger: e.logger, out: cmd.OutOrStdout()}
		return sh.run(e.bank.Title, cmd.InOrStdin())
	},
}

// askShell drives a controller from text commands.
type askShell struct {
	ctrl    *quiz.Controller
	catalog *catalog.Catalog
	logger  *zap.Logger
	out     io.Writer
}

func (a *askShell) run(title string, in io.Reader) error {
	if title == "" {
		title = a.catalog.Text("app_name")
	}
	fmt.Fprintf(a.out, "%s quiz: %d questions\n", title, a.ctrl.Len())
	fmt.Fprintln(a.out, strings.Repeat("─", 40))
	a.printQuestion()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			a.printResult()
			return nil
		}

		if err := a.handle(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	a.printResult()
	return nil
}

func (a *askShell) handle(line string) error {
	cmd, err := quiz.ParseCommand(line)
	if err != nil {
		fmt.Fprintf(a.out, "Unknown command %q. Use t, f, n, p, c or q.\n", line)
		return nil
	}
	if !a.ctrl.Controls().Allows(cmd) {
		fmt.Fprintf(a.out, "%s is not available right now.\n", cmd)
		return nil
	}

	notices, err := a.ctrl.Dispatch(cmd)
	switch {
	case errors.Is(err, quiz.ErrAlreadyAnswered):
		fmt.Fprintln(a.out, "Already answered.")
		return nil
	case err != nil:
		return err
	}
	a.logger.Debug("command", zap.Stringer("cmd", cmd), zap.Int("index", a.ctrl.Index()))

	for _, n := range notices {
		fmt.Fprintf(a.out, "  %s\n", a.catalog.Notice(n))
	}
	a.printQuestion()
	return nil
}

func (a *askShell) printQuestion() {
	q := a.ctrl.CurrentQuestion()
	marker := ""
	if a.ctrl.IsAnswered(a.ctrl.Index()) {
		marker = " (answered)"
	}
	fmt.Fprintf(a.out, "\n[%d/%d] %s%s\n> ", a.ctrl.Index()+1, a.ctrl.Len(),
		a.catalog.Text(q.PromptID), marker)
}

func (a *askShell) printResult() {
	r := a.ctrl.Result()
	fmt.Fprintf(a.out, "\nAnswered %d/%d, %d correct.\n", r.Answered, r.Total, r.Correct)
	if a.ctrl.Completed() {
		fmt.Fprintf(a.out, "%s %s\n", a.catalog.Text("quiz_score"), quiz.FormatScore(r.Score))
	}
}
