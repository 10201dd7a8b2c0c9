package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// CommandKind enumerates the events a shell can send to the controller.
type CommandKind int

const (
	CmdNext CommandKind = iota
	CmdPrevious
	CmdAnswer
	CmdCycle
)

// Command is a single shell event. Choice is read for CmdAnswer only.
type Command struct {
	Kind   CommandKind
	Choice bool
}

var (
	NextCmd     = Command{Kind: CmdNext}
	PreviousCmd = Command{Kind: CmdPrevious}
	CycleCmd    = Command{Kind: CmdCycle}
)

// AnswerCmd returns a command answering the current question with choice.
func AnswerCmd(choice bool) Command {
	return Command{Kind: CmdAnswer, Choice: choice}
}

func (c Command) String() string {
	switch c.Kind {
	case CmdNext:
		return "next"
	case CmdPrevious:
		return "prev"
	case CmdCycle:
		return "cycle"
	case CmdAnswer:
		if c.Choice {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("command(%d)", int(c.Kind))
	}
}

// ParseCommand parses the textual form used by the line shell and by
// recorded sessions: next, prev, cycle, true, false and their one-letter
// abbreviations.
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "next":
		return NextCmd, nil
	case "p", "prev", "previous":
		return PreviousCmd, nil
	case "c", "cycle":
		return CycleCmd, nil
	case "t", "true":
		return AnswerCmd(true), nil
	case "f", "false":
		return AnswerCmd(false), nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Dispatch routes a command to the matching controller operation.
func (c *Controller) Dispatch(cmd Command) ([]Notice, error) {
	switch cmd.Kind {
	case CmdNext:
		return c.Next(), nil
	case CmdPrevious:
		return c.Previous(), nil
	case CmdCycle:
		return c.Cycle(), nil
	case CmdAnswer:
		return c.Answer(cmd.Choice)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

// Replay dispatches a whitespace-separated command script and returns every
// notice produced. Rejected answers are skipped; parse errors stop the replay.
func (c *Controller) Replay(script string) ([]Notice, error) {
	var all []Notice
	for _, field := range strings.Fields(script) {
		cmd, err := ParseCommand(field)
		if err != nil {
			return all, err
		}
		notices, err := c.Dispatch(cmd)
		if err != nil && !errors.Is(err, ErrAlreadyAnswered) {
			return all, err
		}
		all = append(all, notices...)
	}
	return all, nil
}

// Allows reports whether the control behind cmd is enabled. Cycle has no
// control of its own and is always allowed.
func (ctl Controls) Allows(cmd Command) bool {
	switch cmd.Kind {
	case CmdNext:
		return ctl.Next
	case CmdPrevious:
		return ctl.Previous
	case CmdAnswer:
		if cmd.Choice {
			return ctl.True
		}
		return ctl.False
	case CmdCycle:
		return true
	}
	return false
}
