package tarneeb

import (
	"errors"
	"fmt"
	"testing"

	"tarneeb-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func deckCard(s string) deck.Card {
	return deck.CardFromString(s)
}

func TestGameError_Is(t *testing.T) {
	a := assert.New(t)

	err := newError(KindInvalidBid, "bids must be between %d and %d", 5, 13)
	a.EqualError(err, "bids must be between 5 and 13")
	a.True(errors.Is(err, ErrInvalidBid))
	a.False(errors.Is(err, ErrNotYourTurn))

	wrapped := fmt.Errorf("wrapped: %w", err)
	a.True(errors.Is(wrapped, ErrInvalidBid))
}

func TestFaultError(t *testing.T) {
	a := assert.New(t)

	fault := &FaultError{Reason: "could not deal", Err: deck.ErrCorruptDeck}
	a.True(IsFault(fault))
	a.True(errors.Is(fault, deck.ErrCorruptDeck))
	a.Contains(fault.Error(), "could not deal")

	a.False(IsFault(ErrInvalidBid))
	a.EqualError(&FaultError{Reason: "oops"}, "engine fault: oops")
}

func TestParseAction(t *testing.T) {
	a := assert.New(t)

	for _, action := range []ActionKind{ActionJoin, ActionLeave, ActionBid, ActionPass, ActionDeclare, ActionPlayCard} {
		parsed, err := ParseAction(action.String())
		a.NoError(err)
		a.Equal(action, parsed)
	}

	_, err := ParseAction("fold")
	a.ErrorIs(err, ErrUnknownAction)
}

func TestPhase_MarshalText(t *testing.T) {
	text, err := PhaseTrickPlay.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "trickPlay", string(text))
	assert.Equal(t, "phase(42)", Phase(42).String())
}
