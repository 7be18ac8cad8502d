package tarneeb

import (
	"tarneeb-server/pkg/deck"
	"tarneeb-server/pkg/playable"
)

// newLogMessage returns a log line about a seat. The client replaces {} with the seat's name
// A negative seat means the message is not about anyone in particular
func newLogMessage(seat int, card *deck.Card, format string, a ...interface{}) *playable.LogMessage {
	var seats []int
	if seat >= 0 {
		seats = []int{seat}
	}

	var cards []deck.Card
	if card != nil {
		cards = []deck.Card{*card}
	}

	return playable.NewLogMessage(seats, cards, format, a...)
}

func newLogMessageWithSeats(seats []int, format string, a ...interface{}) *playable.LogMessage {
	return playable.NewLogMessage(append([]int{}, seats...), nil, format, a...)
}
