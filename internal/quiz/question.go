package quiz

import "errors"

var (
	// ErrEmptyBank is returned when a controller is built from an empty bank.
	ErrEmptyBank = errors.New("question bank is empty")

	// ErrAlreadyAnswered is returned when the current question was answered before.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrInvalidSnapshot is returned when a snapshot points outside the bank.
	ErrInvalidSnapshot = errors.New("snapshot index out of range")

	// ErrUnknownCommand is returned by Dispatch for an unrecognized command kind.
	ErrUnknownCommand = errors.New("unknown command")
)

// Question is a single true/false prompt.
type Question struct {
	// PromptID is a text reference resolved through the string catalog.
	PromptID string

	// Answer is the correct answer.
	Answer bool
}
