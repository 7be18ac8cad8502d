package tarneeb

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected intent
type ErrorKind string

// error kinds reported back to the offending seat
const (
	KindInvalidBid             ErrorKind = "InvalidBid"
	KindNotYourTurn            ErrorKind = "NotYourTurn"
	KindWrongPhase             ErrorKind = "WrongPhase"
	KindDeckNotReady           ErrorKind = "DeckNotReady"
	KindDeclareBelowBid        ErrorKind = "DeclareBelowBid"
	KindDeclareSumForbidden    ErrorKind = "DeclareSumForbidden"
	KindFollowSuitViolation    ErrorKind = "FollowSuitViolation"
	KindHandEmptyOrCardNotHeld ErrorKind = "HandEmptyOrCardNotHeld"
	KindInvalidDeclare         ErrorKind = "InvalidDeclare"
	KindTableFull              ErrorKind = "TableFull"
	KindUnknownSeat            ErrorKind = "UnknownSeat"
	KindUnknownAction          ErrorKind = "UnknownAction"
)

// GameError is a recoverable error caused by a single player intent
// The engine state is unchanged when one is returned
type GameError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (g *GameError) Error() string {
	return g.Message
}

// Is matches any GameError of the same kind
func (g *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	return ok && t.Kind == g.Kind
}

func newError(kind ErrorKind, format string, a ...interface{}) *GameError {
	return &GameError{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
	}
}

// sentinels for use with errors.Is
var (
	ErrInvalidBid             = &GameError{Kind: KindInvalidBid, Message: "invalid bid"}
	ErrNotYourTurn            = &GameError{Kind: KindNotYourTurn, Message: "it is not your turn"}
	ErrWrongPhase             = &GameError{Kind: KindWrongPhase, Message: "that action is not allowed right now"}
	ErrDeckNotReady           = &GameError{Kind: KindDeckNotReady, Message: "the deck is not ready"}
	ErrDeclareBelowBid        = &GameError{Kind: KindDeclareBelowBid, Message: "your declare cannot be less than your bid"}
	ErrDeclareSumForbidden    = &GameError{Kind: KindDeclareSumForbidden, Message: "the sum of declares cannot be 13"}
	ErrFollowSuitViolation    = &GameError{Kind: KindFollowSuitViolation, Message: "you must play a card of the leading suit"}
	ErrHandEmptyOrCardNotHeld = &GameError{Kind: KindHandEmptyOrCardNotHeld, Message: "card is not in your hand"}
	ErrInvalidDeclare         = &GameError{Kind: KindInvalidDeclare, Message: "invalid declare"}
	ErrTableFull              = &GameError{Kind: KindTableFull, Message: "the table is full"}
	ErrUnknownSeat            = &GameError{Kind: KindUnknownSeat, Message: "seat not found"}
	ErrUnknownAction          = &GameError{Kind: KindUnknownAction, Message: "unknown action"}
)

// ErrEngineClosed is returned for any intent after Close()
var ErrEngineClosed = errors.New("the table is closed")

// FaultError is an internal invariant violation. It halts the round
type FaultError struct {
	Reason string
	Err    error
}

func (f *FaultError) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("engine fault: %s: %v", f.Reason, f.Err)
	}

	return "engine fault: " + f.Reason
}

// Unwrap returns the underlying error
func (f *FaultError) Unwrap() error {
	return f.Err
}

// IsFault returns true if the error halted the engine
func IsFault(err error) bool {
	var f *FaultError
	return errors.As(err, &f)
}
