package tarneeb

import (
	"tarneeb-server/pkg/deck"
	"tarneeb-server/pkg/playable"
)

// GameState is the public state of the table
type GameState struct {
	Round          int          `json:"round"`
	Phase          Phase        `json:"phase"`
	Turn           int          `json:"turn"`
	StartingBidder int          `json:"startingBidder"`
	Bid            BidState     `json:"bid"`
	Trump          deck.Suit    `json:"trump,omitempty"`
	SumOfDeclares  int          `json:"sumOfDeclares"`
	Trick          []PlayedCard `json:"trick"`
	LeadingSuit    deck.Suit    `json:"leadingSuit,omitempty"`
	TricksPlayed   int          `json:"tricksPlayed"`
	Settling       bool         `json:"settling"`
	Seats          []SeatState  `json:"seats"`
}

// PlayerState is the state for a single seat, including its hand
type PlayerState struct {
	GameState GameState      `json:"gameState"`
	Seat      int            `json:"seat"`
	Hand      deck.Hand      `json:"hand"`
	Prompt    *DeclarePrompt `json:"prompt,omitempty"`
}

// State returns the public state
func (e *Engine) State() GameState {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.gameState()
}

func (e *Engine) gameState() GameState {
	return GameState{
		Round:          e.roundNo,
		Phase:          e.phase,
		Turn:           e.turn,
		StartingBidder: e.startingBidder,
		Bid:            e.bidState(),
		Trump:          e.trump,
		SumOfDeclares:  e.sumOfDeclares,
		Trick:          cloneTrick(e.trick),
		LeadingSuit:    e.leadingSuit,
		TricksPlayed:   e.tricksPlayed,
		Settling:       e.settling,
		Seats:          e.table.States(),
	}
}

// GetPlayerState returns the state for the seat
// A negative seat returns the public state only
func (e *Engine) GetPlayerState(seatIndex int) (*playable.Response, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if seatIndex < 0 {
		return &playable.Response{
			Key:   "game",
			Value: e.Name(),
			Data:  e.gameState(),
		}, nil
	}

	seat, err := e.table.seat(seatIndex)
	if err != nil {
		return nil, err
	}

	state := PlayerState{
		GameState: e.gameState(),
		Seat:      seatIndex,
		Hand:      deck.SortForDisplay(seat.hand),
	}

	if e.phase == PhaseDeclaring && e.turn == seatIndex {
		prompt := e.declarePrompt()
		state.Prompt = &prompt
	}

	return &playable.Response{
		Key:   "game",
		Value: e.Name(),
		Data:  state,
	}, nil
}
