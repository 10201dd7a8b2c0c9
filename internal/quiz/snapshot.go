package quiz

import "fmt"

// Snapshot is the state kept across suspend and resume. Only the position
// survives; answer history and the correct count start over.
type Snapshot struct {
	CurrentIndex int `json:"current_index"`
}

// Snapshot captures the current position.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{CurrentIndex: c.state.CurrentIndex}
}

// Restore resets the session and moves to the snapshot position.
func (c *Controller) Restore(snap Snapshot) error {
	if snap.CurrentIndex < 0 || snap.CurrentIndex >= len(c.bank) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidSnapshot, snap.CurrentIndex, len(c.bank))
	}
	c.state = newState()
	c.state.CurrentIndex = snap.CurrentIndex
	c.nextBlocked = false
	c.prevBlocked = false
	return nil
}
