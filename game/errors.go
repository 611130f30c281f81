package game

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the gameplay rule an action violated. Every
// kind is recoverable: the caller picks a different action and moves
// on. Programming-contract violations (undo on an empty history) are
// panics, not GameErrors.
type ErrorKind int

const (
	ErrInput ErrorKind = iota
	ErrBuildLocation
	ErrInvalidResources
	ErrNotEnoughPieces
	ErrNotEnoughGameCards
	ErrDevelopmentCard
	ErrPhase
	ErrRobber
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInput:
		return "input"
	case ErrBuildLocation:
		return "build location"
	case ErrInvalidResources:
		return "invalid resources"
	case ErrNotEnoughPieces:
		return "not enough pieces"
	case ErrNotEnoughGameCards:
		return "not enough game cards"
	case ErrDevelopmentCard:
		return "development card"
	case ErrPhase:
		return "phase"
	case ErrRobber:
		return "robber"
	default:
		return "unknown"
	}
}

// GameError is a recoverable rule violation. State is never mutated
// before one is returned.
type GameError struct {
	Kind ErrorKind
	msg  string
}

func (e *GameError) Error() string {
	return e.msg
}

func newError(kind ErrorKind, format string, args ...any) *GameError {
	return &GameError{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from an error returned by the rules
// engine.
func KindOf(err error) (ErrorKind, bool) {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Kind, true
	}
	return 0, false
}
