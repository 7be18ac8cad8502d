package tarneeb

import (
	"tarneeb-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// PlayCard plays a card from the seat's hand into the current trick
func (e *Engine) PlayCard(seatIndex int, card deck.Card) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	seat, err := e.checkTurn(seatIndex, ActionPlayCard)
	if err != nil {
		return e.reject(seatIndex, ActionPlayCard, err)
	}

	if err := e.canPlayCard(seat, card); err != nil {
		return e.reject(seatIndex, ActionPlayCard, err)
	}

	if err := seat.playCard(card); err != nil {
		return e.halt(&FaultError{Reason: "validated card could not be played", Err: err})
	}

	if len(e.trick) == 0 {
		e.leadingSuit = card.Suit
	}

	e.trick = append(e.trick, PlayedCard{Card: card, Seat: seatIndex})

	e.logger.WithFields(logrus.Fields{
		"seat": seatIndex,
		"card": card.String(),
	}).Debug("card played")

	e.notify(Broadcast, NotifyTrickUpdate, TrickUpdate{Cards: cloneTrick(e.trick), LeadingSuit: e.leadingSuit})
	e.sendLogMessages(newLogMessage(seatIndex, &card, "{} played a card"))

	if len(e.trick) < NumSeats {
		e.turn = (seatIndex + 1) % NumSeats
		e.sendTurn()
		return nil
	}

	return e.completeTrick()
}

// canPlayCard returns nil if the seat can play the card
// This method does not check if it's actually the seat's turn or not
func (e *Engine) canPlayCard(seat *Seat, card deck.Card) error {
	if !card.Valid() {
		return newError(KindHandEmptyOrCardNotHeld, "that is not a valid card")
	}

	if len(seat.hand) == 0 || !seat.hand.HasCard(card) {
		return newError(KindHandEmptyOrCardNotHeld, "%s is not in your hand", card)
	}

	if len(e.trick) > 0 && card.Suit != e.leadingSuit && seat.hand.HasSuit(e.leadingSuit) {
		return newError(KindFollowSuitViolation, "you must play a card of the leading suit (%s)", e.leadingSuit.Symbol())
	}

	return nil
}

// completeTrick is called after the fourth card of a trick has been played
func (e *Engine) completeTrick() error {
	winnerIndex, err := ResolveTrick(e.trick, e.trump, e.leadingSuit)
	if err != nil {
		return e.halt(&FaultError{Reason: "could not resolve trick", Err: err})
	}

	winner := e.table.seats[winnerIndex]
	winner.takes++
	e.tricksPlayed++
	e.turn = winnerIndex

	e.logger.WithFields(logrus.Fields{
		"round":  e.roundNo,
		"trick":  e.tricksPlayed,
		"winner": winnerIndex,
	}).Debug("trick resolved")

	e.notify(Broadcast, NotifyTrickResolved, TrickResolved{
		Winner:     winnerIndex,
		Takes:      winner.takes,
		Cards:      cloneTrick(e.trick),
		TricksLeft: TricksPerRound - e.tricksPlayed,
	})
	e.sendRoster()
	e.sendLogMessages(newLogMessage(winnerIndex, nil, "{} won the trick"))

	switch empty := e.table.emptyHands(); {
	case empty == NumSeats:
		if e.tricksPlayed != TricksPerRound {
			return e.halt(&FaultError{Reason: "hands emptied before the last trick"})
		}

		// the last trick is not settled, it stays on the table until the next deal
		e.scoreRound()
		return nil
	case empty > 0:
		return e.halt(&FaultError{Reason: "hand sizes no longer match"})
	}

	e.settling = true
	e.schedule(e.options.SettleDelay, e.settleTrick)
	return nil
}

// settleTrick clears the completed trick so the winner can lead
func (e *Engine) settleTrick() {
	if e.phase != PhaseTrickPlay || !e.settling {
		return
	}

	e.trick = nil
	e.leadingSuit = ""
	e.settling = false

	e.notify(Broadcast, NotifyTrickUpdate, TrickUpdate{Cards: []PlayedCard{}})
	e.sendTurn()
}
