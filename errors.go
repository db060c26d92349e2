package automata

import (
	"errors"
	"fmt"
)

var (
	ErrNoStartState      = errors.New("automata: start state is empty")
	ErrUnknownState      = errors.New("automata: state is not declared")
	ErrUnknownSymbol     = errors.New("automata: symbol is not in the alphabet")
	ErrInvalidState      = errors.New("automata: invalid state identifier")
	ErrEpsilonInAlphabet = errors.New("automata: alphabet contains the empty symbol")
	ErrDuplicateSymbol   = errors.New("automata: duplicate alphabet symbol")
	ErrTooManyStates     = errors.New("automata: DFA state limit exceeded")
)

var malformed = []error{
	ErrNoStartState,
	ErrUnknownState,
	ErrUnknownSymbol,
	ErrInvalidState,
	ErrEpsilonInAlphabet,
	ErrDuplicateSymbol,
}

// IsMalformed reports whether err describes an NFA that failed validation.
func IsMalformed(err error) bool {
	for _, target := range malformed {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ParseError reports a problem with user-supplied NFA text.
// Line is 1-based and only set for the transitions field.
type ParseError struct {
	Field   string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("automata: %s line %d: %s", e.Field, e.Line, e.Message)
	}
	return fmt.Sprintf("automata: %s: %s", e.Field, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
