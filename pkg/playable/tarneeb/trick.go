package tarneeb

import (
	"errors"

	"tarneeb-server/pkg/deck"
)

// ErrNoWinningCard happens when no card in the trick is trump or of the leading suit
var ErrNoWinningCard = errors.New("no card in the trick can win")

// PlayedCard is a card in the trick along with the seat that played it
type PlayedCard struct {
	Card deck.Card `json:"card"`
	Seat int       `json:"seat"`
}

// ResolveTrick returns the seat that wins the trick
// Any trump beats any non-trump. With no trump played, the highest card of the leading suit wins.
// Off-suit cards that are not trump can never win. An empty trump means no trump suit
func ResolveTrick(plays []PlayedCard, trump deck.Suit, leading deck.Suit) (int, error) {
	var winner *PlayedCard
	for i := range plays {
		played := &plays[i]
		card := played.Card
		isTrump := trump != "" && card.Suit == trump

		if winner == nil {
			if isTrump || card.Suit == leading {
				winner = played
			}

			continue
		}

		winnerIsTrump := trump != "" && winner.Card.Suit == trump
		switch {
		case isTrump && !winnerIsTrump:
			winner = played
		case isTrump && card.Rank > winner.Card.Rank:
			winner = played
		case !isTrump && !winnerIsTrump && card.Suit == leading && card.Rank > winner.Card.Rank:
			winner = played
		}
	}

	if winner == nil {
		return -1, ErrNoWinningCard
	}

	return winner.Seat, nil
}

func cloneTrick(trick []PlayedCard) []PlayedCard {
	return append([]PlayedCard{}, trick...)
}
