package tarneeb

import (
	"testing"

	"tarneeb-server/pkg/deck"
	"tarneeb-server/pkg/snapshot"

	"github.com/stretchr/testify/assert"
)

func TestEngine_GetPlayerState(t *testing.T) {
	a := assert.New(t)
	e, _, _ := newFullTable(t, 11)
	finishBiddingAtSeatZero(t, e, 6, deck.Diamonds)

	res, err := e.GetPlayerState(-1)
	a.NoError(err)
	a.Equal("game", res.Key)
	a.Equal("tarneeb", res.Value)

	public := res.Data.(GameState)
	a.Equal(PhaseDeclaring, public.Phase)
	a.Equal(deck.Diamonds, public.Trump)
	a.Len(public.Seats, NumSeats)
	snapshot.Match(t, public)

	res, err = e.GetPlayerState(0)
	a.NoError(err)
	state := res.Data.(PlayerState)
	a.Equal(0, state.Seat)
	a.Len(state.Hand, TricksPerRound)
	a.Equal(deck.SortForDisplay(e.table.seats[0].hand), state.Hand)
	a.Equal(&DeclarePrompt{Seat: 0, Minimum: 6, Forbidden: -1}, state.Prompt)
	snapshot.Match(t, state)

	res, err = e.GetPlayerState(1)
	a.NoError(err)
	a.Nil(res.Data.(PlayerState).Prompt, "only the seat on turn is prompted")

	res, err = e.GetPlayerState(5)
	a.Nil(res)
	a.ErrorIs(err, ErrUnknownSeat)
}

func TestEngine_State(t *testing.T) {
	e, _, _ := newTestEngine(1)
	_, _ = e.JoinTable("Solo")

	state := e.State()
	assert.Equal(t, PhaseWaiting, state.Phase)
	assert.Equal(t, 0, state.Round)
	assert.Len(t, state.Seats, 1)
	assert.Equal(t, []PlayedCard{}, state.Trick)
	assert.Equal(t, -1, state.Bid.HighestBidder)
}
