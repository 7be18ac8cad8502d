package tarneeb

import (
	"tarneeb-server/pkg/deck"
	"tarneeb-server/pkg/playable"
)

var _ playable.Playable = (*Engine)(nil)

// Action performs a game action for the seat
// join and leave are handled by the transport through JoinTable() and Leave()
func (e *Engine) Action(seat int, message *playable.PayloadIn) (*playable.Response, error) {
	action, err := ParseAction(message.Action)
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionBid:
		number, ok := message.AdditionalData.GetInt("number")
		if !ok {
			return nil, newError(KindInvalidBid, "bid is missing a number")
		}

		suitName, ok := message.AdditionalData.GetString("suit")
		if !ok {
			return nil, newError(KindInvalidBid, "bid is missing a suit")
		}

		suit, err := deck.ParseSuit(suitName)
		if err != nil {
			return nil, newError(KindInvalidBid, "%s", err.Error())
		}

		if err := e.Bid(seat, number, suit); err != nil {
			return nil, err
		}
	case ActionPass:
		if err := e.Pass(seat); err != nil {
			return nil, err
		}
	case ActionDeclare:
		count, ok := message.AdditionalData.GetInt("count")
		if !ok {
			return nil, newError(KindInvalidDeclare, "declare is missing a count")
		}

		if err := e.Declare(seat, count); err != nil {
			return nil, err
		}
	case ActionPlayCard:
		if len(message.Cards) != 1 {
			return nil, newError(KindHandEmptyOrCardNotHeld, "you must play exactly one card")
		}

		if err := e.PlayCard(seat, message.Cards[0]); err != nil {
			return nil, err
		}
	default:
		return nil, newError(KindUnknownAction, "%s is not a game action", action)
	}

	return playable.OK(message.Context), nil
}
