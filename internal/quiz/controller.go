package quiz

import "maps"

// Controller owns a question bank and the session state derived from it.
// It is not safe for concurrent use; the shell feeds it one event at a time.
type Controller struct {
	bank  []Question
	state State

	// Set when a boundary notice fired; cleared by moving the other way.
	nextBlocked bool
	prevBlocked bool
}

// NewController creates a controller positioned at the first question.
func NewController(bank []Question) (*Controller, error) {
	if len(bank) == 0 {
		return nil, ErrEmptyBank
	}
	q := make([]Question, len(bank))
	copy(q, bank)
	return &Controller{bank: q, state: newState()}, nil
}

// Len returns the number of questions in the bank.
func (c *Controller) Len() int {
	return len(c.bank)
}

// Index returns the current question index.
func (c *Controller) Index() int {
	return c.state.CurrentIndex
}

// Correct returns the number of correct answers so far.
func (c *Controller) Correct() int {
	return c.state.Correct
}

// AnsweredCount returns how many questions have been answered.
func (c *Controller) AnsweredCount() int {
	return len(c.state.Answered)
}

// State returns a copy of the session state.
func (c *Controller) State() State {
	s := c.state
	s.Answered = maps.Clone(c.state.Answered)
	return s
}

// CurrentQuestion returns the question at the current index.
func (c *Controller) CurrentQuestion() Question {
	return c.bank[c.state.CurrentIndex]
}

// Question returns the question at index i.
func (c *Controller) Question(i int) (Question, bool) {
	if i < 0 || i >= len(c.bank) {
		return Question{}, false
	}
	return c.bank[i], true
}

// IsAnswered reports whether question i has been answered.
func (c *Controller) IsAnswered(i int) bool {
	return c.state.Answered[i]
}

// AtFirst reports whether the first question is shown.
func (c *Controller) AtFirst() bool { return c.state.CurrentIndex == 0 }

// AtLast reports whether the last question is shown.
func (c *Controller) AtLast() bool { return c.state.CurrentIndex == len(c.bank)-1 }

// Completed reports whether every question has been answered.
func (c *Controller) Completed() bool {
	return len(c.state.Answered) == len(c.bank)
}

// Phase returns the session-level state.
func (c *Controller) Phase() Phase {
	if c.Completed() {
		return PhaseCompleted
	}
	return PhaseInProgress
}

// Controls returns the enablement of the answer and navigation controls.
func (c *Controller) Controls() Controls {
	open := !c.IsAnswered(c.state.CurrentIndex)
	return Controls{
		True:     open,
		False:    open,
		Previous: !c.prevBlocked,
		Next:     !c.nextBlocked,
	}
}

// Next moves to the following question. On the last question the index stays
// put and an end-reached notice is returned, followed by an unanswered notice
// when the session is not complete.
func (c *Controller) Next() []Notice {
	if c.AtLast() {
		c.nextBlocked = true
		notices := []Notice{{Kind: NoticeEndReached, Index: c.state.CurrentIndex}}
		if !c.Completed() {
			notices = append(notices, Notice{Kind: NoticeUnanswered, Index: c.state.CurrentIndex})
		}
		return notices
	}
	c.state.CurrentIndex++
	c.prevBlocked = false
	return nil
}

// Previous moves to the preceding question. It never wraps: on the first
// question it returns a beginning-reached notice instead.
func (c *Controller) Previous() []Notice {
	if c.AtFirst() {
		c.prevBlocked = true
		return []Notice{{Kind: NoticeBeginningReached, Index: 0}}
	}
	c.state.CurrentIndex--
	c.nextBlocked = false
	return nil
}

// Cycle advances with wrap-around and no boundary notices.
func (c *Controller) Cycle() []Notice {
	c.state.CurrentIndex = (c.state.CurrentIndex + 1) % len(c.bank)
	c.nextBlocked = false
	c.prevBlocked = false
	return nil
}

// Answer records the user's choice for the current question. It returns
// ErrAlreadyAnswered, with state unchanged, when the question was answered
// before. The final answer of a session also yields a score notice.
func (c *Controller) Answer(choice bool) ([]Notice, error) {
	idx := c.state.CurrentIndex
	if c.state.Answered[idx] {
		return nil, ErrAlreadyAnswered
	}

	kind := NoticeIncorrect
	if choice == c.bank[idx].Answer {
		kind = NoticeCorrect
		c.state.Correct++
	}
	c.state.Answered[idx] = true

	notices := []Notice{{Kind: kind, Index: idx}}
	if c.Completed() {
		notices = append(notices, Notice{Kind: NoticeScore, Index: idx, Score: c.Score()})
	}
	return notices, nil
}

// Score returns the percentage of correct answers out of the whole bank.
func (c *Controller) Score() float64 {
	return float64(c.state.Correct) * 100 / float64(len(c.bank))
}
