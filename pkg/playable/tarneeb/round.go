package tarneeb

import (
	"tarneeb-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// startRound shuffles, deals and opens the bidding
// A redeal keeps the round number and the starting bidder
func (e *Engine) startRound(roundNo int, redeal bool) {
	e.cancelTimer()
	e.resetRound()
	e.roundNo = roundNo
	e.fault = nil

	if !e.table.Full() {
		_ = e.halt(&FaultError{Reason: "cannot start a round without four seats"})
		return
	}

	if err := e.deal(); err != nil {
		_ = e.halt(&FaultError{Reason: "could not deal", Err: err})
		return
	}

	e.phase = PhaseBidding
	e.turn = e.startingBidder

	e.logger.WithFields(logrus.Fields{
		"round":          e.roundNo,
		"startingBidder": e.startingBidder,
		"redeal":         redeal,
	}).Info("round started")

	for _, seat := range e.table.occupied() {
		e.notify(seat.Index, NotifyRoundStarted, RoundStarted{
			Round:          e.roundNo,
			Seat:           seat.Index,
			Hand:           deck.SortForDisplay(seat.hand),
			StartingBidder: e.startingBidder,
			Redeal:         redeal,
		})
	}

	e.sendRoster()
	e.notify(Broadcast, NotifyBiddingUpdate, BiddingUpdate{Bid: e.bidState()})
	e.sendTurn()

	if redeal {
		e.sendLogMessages(newLogMessage(-1, nil, "Everyone passed, the cards were dealt again"))
	} else {
		e.sendLogMessages(newLogMessage(-1, nil, "Round %d started", e.roundNo))
	}
}

// deal gives each seat 13 cards from a fresh deck
func (e *Engine) deal() error {
	e.deck = deck.New()
	e.deck.SetGenerator(e.options.Generator)
	e.deck.Shuffle()
	hash := e.deck.HashCode()

	hands, err := e.deck.Deal(NumSeats)
	if err != nil {
		return err
	}

	for i, seat := range e.table.occupied() {
		seat.hand = hands[i]
	}

	e.logger.WithFields(logrus.Fields{
		"round": e.roundNo,
		"deck":  hash,
	}).Debug("cards dealt")
	return nil
}

// resetRound clears the per-round trackers, keeping cumulative scores
func (e *Engine) resetRound() {
	for _, seat := range e.table.occupied() {
		seat.newRound()
	}

	e.deck = nil
	e.trump = ""
	e.bid = newBidState()
	e.sumOfDeclares = 0
	e.trick = nil
	e.leadingSuit = ""
	e.tricksPlayed = 0
	e.settling = false
}

// abortRound drops the current round. Scores already applied are kept
func (e *Engine) abortRound(reason string) {
	e.cancelTimer()

	round := e.roundNo
	e.resetRound()
	e.phase = PhaseWaiting
	e.fault = nil

	e.logger.WithFields(logrus.Fields{
		"round":  round,
		"reason": reason,
	}).Info("round aborted")

	e.notify(Broadcast, NotifyRoundAborted, RoundAborted{Round: round, Reason: reason})
	e.sendRoster()
}

// nextRound is called once the scores have been shown
func (e *Engine) nextRound() {
	if e.phase != PhaseScoring {
		return
	}

	if e.table.Full() {
		e.startRound(e.roundNo+1, false)
		return
	}

	e.resetRound()
	e.phase = PhaseWaiting
	e.sendRoster()
}
