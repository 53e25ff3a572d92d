package ithkuil

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	ErrFormatting   = errors.New("formatting error")
	ErrStructure    = errors.New("structural error")
	ErrUnknownValue = errors.New("unknown value")
)

// FormattingError rejects a token before it is classified: illegal
// characters, misplaced punctuation, bad stress marking or an empty token.
type FormattingError struct {
	Token  string
	Reason string
}

func (e *FormattingError) Error() string { return e.Reason }

func (e *FormattingError) Unwrap() error { return ErrFormatting }

// StructuralError reports a word whose groups do not fill the slots of its
// word type.
type StructuralError struct {
	Slot   string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Slot == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Slot, e.Reason)
}

func (e *StructuralError) Unwrap() error { return ErrStructure }

// UnknownValueError reports a slot whose raw form is missing from its table.
type UnknownValueError struct {
	Slot string
	Form string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("Unknown %s: %s", e.Slot, e.Form)
}

func (e *UnknownValueError) Unwrap() error { return ErrUnknownValue }

func structural(slot, format string, args ...any) error {
	return &StructuralError{Slot: slot, Reason: fmt.Sprintf(format, args...)}
}

func unknown(slot, form string) error {
	return &UnknownValueError{Slot: slot, Form: form}
}

// SentenceError fails a whole sentence on the first token that did not
// gloss.
type SentenceError struct {
	Token   string
	Failure Failed
}

func (e *SentenceError) Error() string { return e.Token + ": " + e.Failure.Message }

func (e *SentenceError) Unwrap() error { return e.Failure.Err }
