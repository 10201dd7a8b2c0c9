package quiz

// Result holds the data displayed on the summary screen.
type Result struct {
	Total    int
	Answered int
	Correct  int
	Score    float64
}

// Result summarizes the session so far.
func (c *Controller) Result() Result {
	return Result{
		Total:    len(c.bank),
		Answered: len(c.state.Answered),
		Correct:  c.state.Correct,
		Score:    c.Score(),
	}
}
