package tarneeb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableState(t *testing.T) {
	a := assert.New(t)

	var table TableState
	a.Equal(0, table.Count())
	a.False(table.Full())

	for i := 0; i < NumSeats; i++ {
		seat, err := table.join("player")
		a.NoError(err)
		a.Equal(i, seat.Index)
	}

	a.True(table.Full())

	seat, err := table.join("fifth")
	a.Nil(seat)
	a.ErrorIs(err, ErrTableFull)

	seat, err = table.leave(1)
	a.NoError(err)
	a.Equal(1, seat.Index)
	a.Equal(3, table.Count())

	_, err = table.leave(1)
	a.ErrorIs(err, ErrUnknownSeat)

	_, err = table.seat(NumSeats)
	a.ErrorIs(err, ErrUnknownSeat)

	_, err = table.seat(-1)
	a.ErrorIs(err, ErrUnknownSeat)

	// lowest free seat is reused
	seat, err = table.join("again")
	a.NoError(err)
	a.Equal(1, seat.Index)
	a.Equal("again", seat.Name)

	states := table.States()
	a.Len(states, NumSeats)
	for i, state := range states {
		a.Equal(i, state.Seat)
	}
}

func TestTableState_emptyHands(t *testing.T) {
	var table TableState
	for i := 0; i < NumSeats; i++ {
		_, _ = table.join("player")
	}

	assert.Equal(t, NumSeats, table.emptyHands())

	table.seats[2].hand = append(table.seats[2].hand, deckCard("2c"))
	assert.Equal(t, 3, table.emptyHands())
}

func TestSeat_newRound(t *testing.T) {
	seat := newSeat(2, "Tom")
	seat.hand = append(seat.hand, deckCard("14s"))
	seat.declare = 4
	seat.declared = true
	seat.takes = 3
	seat.score = 26

	seat.newRound()
	assert.Equal(t, SeatState{Seat: 2, Name: "Tom", Score: 26}, seat.state())
	assert.Equal(t, 26, seat.Score())
	assert.Len(t, seat.Hand(), 0)
}
