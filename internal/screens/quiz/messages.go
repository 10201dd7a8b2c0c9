package quiz

import "github.com/abhisek/geoquiz/internal/store"

// resumeLoadedMsg is sent when the saved position has been looked up.
type resumeLoadedMsg struct {
	Snap *store.Snapshot
	Err  error
}

// noticeExpiredMsg clears the notice banner if no newer notice replaced it.
type noticeExpiredMsg struct {
	Seq int
}
