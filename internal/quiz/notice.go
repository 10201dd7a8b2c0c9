package quiz

// NoticeKind identifies a transient message for the UI shell.
type NoticeKind int

const (
	NoticeCorrect          NoticeKind = iota // Answer matched
	NoticeIncorrect                          // Answer did not match
	NoticeEndReached                         // Next pressed on the last question
	NoticeUnanswered                         // End reached with questions still unanswered
	NoticeBeginningReached                   // Previous pressed on the first question
	NoticeScore                              // Every question answered, Score is set
)

// Notice is a discrete message the shell renders as a toast or banner.
type Notice struct {
	Kind  NoticeKind
	Index int     // question index the notice refers to
	Score float64 // set for NoticeScore only
}

// String returns the catalog key for the notice text.
func (k NoticeKind) String() string {
	switch k {
	case NoticeCorrect:
		return "correct_toast"
	case NoticeIncorrect:
		return "incorrect_toast"
	case NoticeEndReached:
		return "end_question"
	case NoticeUnanswered:
		return "unanswered_questions"
	case NoticeBeginningReached:
		return "beginning_question"
	case NoticeScore:
		return "quiz_score"
	default:
		return "unknown"
	}
}
