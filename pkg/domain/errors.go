package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrUnknownState         = errors.New("unknown state")
	ErrUnknownLetter        = errors.New("unknown letter")
	ErrIncompleteTransition = errors.New("incomplete transition")
	ErrDuplicateTransition  = errors.New("duplicate transition")
	ErrUndefinedTransition  = errors.New("undefined transition")
	ErrInvalidWord          = errors.New("invalid word")
	ErrEmptySuccessorSet    = errors.New("empty successor set")
	ErrDuplicateLetter      = errors.New("duplicate letter")
)

// UnknownStateError is returned when an operation references a state
// that was never registered.
type UnknownStateError struct {
	State any
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %v", e.State)
}

func (e *UnknownStateError) Unwrap() error { return ErrUnknownState }

// UnknownLetterError is returned when an operation references a letter
// outside the alphabet.
type UnknownLetterError struct {
	Letter any
}

func (e *UnknownLetterError) Error() string {
	return fmt.Sprintf("unknown letter %s", FormatLetter(e.Letter))
}

func (e *UnknownLetterError) Unwrap() error { return ErrUnknownLetter }

// IncompleteTransitionError is returned when a deterministic state is added
// without an outgoing transition for every letter of the alphabet.
type IncompleteTransitionError struct {
	State   any
	Missing []any // Letters without a transition
}

func (e *IncompleteTransitionError) Error() string {
	letters := make([]string, len(e.Missing))
	for i, l := range e.Missing {
		letters[i] = FormatLetter(l)
	}
	return fmt.Sprintf("state %v has no transition for %s", e.State, strings.Join(letters, ", "))
}

func (e *IncompleteTransitionError) Unwrap() error { return ErrIncompleteTransition }

// DuplicateTransitionError is returned on an attempt to redefine the
// transition of a (state, letter) pair.
type DuplicateTransitionError struct {
	State  any
	Letter any
}

func (e *DuplicateTransitionError) Error() string {
	return fmt.Sprintf("transition (%v, %s) is already defined", e.State, FormatLetter(e.Letter))
}

func (e *DuplicateTransitionError) Unwrap() error { return ErrDuplicateTransition }

// UndefinedTransitionError is returned by deterministic traversal when the
// automaton has no entry for the current pair. It always points to a
// construction defect.
type UndefinedTransitionError struct {
	State    any
	Letter   any
	Position int
}

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("no transition for (%v, %s) at position %d", e.State, FormatLetter(e.Letter), e.Position)
}

func (e *UndefinedTransitionError) Unwrap() error { return ErrUndefinedTransition }

// InvalidWordError is returned before traversal when the word contains a
// letter outside the alphabet.
type InvalidWordError struct {
	Letter   any
	Position int
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("invalid word: letter %s at position %d is not in the alphabet", FormatLetter(e.Letter), e.Position)
}

func (e *InvalidWordError) Unwrap() error { return ErrInvalidWord }

// EmptySuccessorSetError is returned when a nondeterministic transition is
// given no successors. An absent pair expresses "stuck", an empty one is
// rejected.
type EmptySuccessorSetError struct {
	State  any
	Letter any
}

func (e *EmptySuccessorSetError) Error() string {
	return fmt.Sprintf("transition (%v, %s) has no successors", e.State, FormatLetter(e.Letter))
}

func (e *EmptySuccessorSetError) Unwrap() error { return ErrEmptySuccessorSet }

// DuplicateLetterError is returned when a letter already in the alphabet
// is added again.
type DuplicateLetterError struct {
	Letter any
}

func (e *DuplicateLetterError) Error() string {
	return fmt.Sprintf("letter %s is already in the alphabet", FormatLetter(e.Letter))
}

func (e *DuplicateLetterError) Unwrap() error { return ErrDuplicateLetter }

// FormatLetter renders a letter for messages. Runes are quoted so that 'a'
// does not print as 97.
func FormatLetter(l any) string {
	if r, ok := l.(rune); ok {
		return strconv.QuoteRune(r)
	}
	return fmt.Sprintf("%v", l)
}
