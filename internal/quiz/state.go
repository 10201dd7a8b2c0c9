package quiz

// Phase is the session-level state.
type Phase int

const (
	PhaseInProgress Phase = iota // At least one question unanswered
	PhaseCompleted               // Every question answered
)

// String returns a display name for the phase.
func (p Phase) String() string {
	if p == PhaseCompleted {
		return "completed"
	}
	return "in-progress"
}

// State tracks the mutable part of a quiz session.
// Invariant: Correct <= len(Answered) <= len(bank).
type State struct {
	// CurrentIndex is always within [0, N-1].
	CurrentIndex int

	// Answered holds the indices answered this session.
	Answered map[int]bool

	// Correct counts matching answers.
	Correct int
}

// newState returns a fresh session state positioned at the first question.
func newState() State {
	return State{Answered: make(map[int]bool)}
}

// Controls reports which of the four shell controls are enabled.
type Controls struct {
	True     bool
	False    bool
	Previous bool
	Next     bool
}
