package tarneeb

import "tarneeb-server/pkg/deck"

// Seat is a player sitting at the table
// The seat index is the player's identity; Name is only for display
type Seat struct {
	Index int
	Name  string

	hand     deck.Hand
	declare  int
	declared bool
	takes    int
	score    int
}

// SeatState is the public view of a seat
type SeatState struct {
	Seat        int    `json:"seat"`
	Name        string `json:"name"`
	Declare     int    `json:"declare"`
	Declared    bool   `json:"declared"`
	Takes       int    `json:"takes"`
	Score       int    `json:"score"`
	CardsInHand int    `json:"cardsInHand"`
}

func newSeat(index int, name string) *Seat {
	return &Seat{
		Index: index,
		Name:  name,
		hand:  make(deck.Hand, 0),
	}
}

// Hand returns a shallow clone of the seat's hand
func (s *Seat) Hand() deck.Hand {
	return s.hand.Clone()
}

// Score returns the cumulative score
func (s *Seat) Score() int {
	return s.score
}

// playCard removes the card from the seat's hand
func (s *Seat) playCard(card deck.Card) error {
	if s.hand.Discard(card) == 0 {
		return ErrHandEmptyOrCardNotHeld
	}

	return nil
}

// newRound clears everything but the cumulative score
func (s *Seat) newRound() {
	s.hand = make(deck.Hand, 0)
	s.declare = 0
	s.declared = false
	s.takes = 0
}

func (s *Seat) state() SeatState {
	return SeatState{
		Seat:        s.Index,
		Name:        s.Name,
		Declare:     s.declare,
		Declared:    s.declared,
		Takes:       s.takes,
		Score:       s.score,
		CardsInHand: len(s.hand),
	}
}
