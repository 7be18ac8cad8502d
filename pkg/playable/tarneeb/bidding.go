package tarneeb

import (
	"tarneeb-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

type bidState struct {
	number int
	suit   deck.Suit
	bidder int
	passed [NumSeats]bool
}

// BidState is the public view of the bidding
type BidState struct {
	Number        int       `json:"number"`
	Suit          deck.Suit `json:"suit,omitempty"`
	HighestBidder int       `json:"highestBidder"`
	CurrentTurn   int       `json:"currentTurn"`
	Passed        []int     `json:"passed"`
	Phase         Phase     `json:"phase"`
	Trump         deck.Suit `json:"trump,omitempty"`
}

func newBidState() bidState {
	return bidState{bidder: -1}
}

// supersedes returns true if the bid beats the highest bid
func (b *bidState) supersedes(number int, suit deck.Suit) bool {
	if b.bidder < 0 {
		return true
	}

	return number > b.number || (number == b.number && suit.Strength() > b.suit.Strength())
}

func (b *bidState) passedCount() int {
	count := 0
	for _, passed := range b.passed {
		if passed {
			count++
		}
	}

	return count
}

// nextTurn returns the next seat after from that has not passed
func (b *bidState) nextTurn(from int) int {
	for i := 1; i <= NumSeats; i++ {
		seat := (from + i) % NumSeats
		if !b.passed[seat] {
			return seat
		}
	}

	return from
}

func (e *Engine) bidState() BidState {
	passed := make([]int, 0, NumSeats)
	for seat, p := range e.bid.passed {
		if p {
			passed = append(passed, seat)
		}
	}

	return BidState{
		Number:        e.bid.number,
		Suit:          e.bid.suit,
		HighestBidder: e.bid.bidder,
		CurrentTurn:   e.turn,
		Passed:        passed,
		Phase:         e.phase,
		Trump:         e.trump,
	}
}

// Bid makes a bid of number tricks with suit as trump
func (e *Engine) Bid(seatIndex, number int, suit deck.Suit) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	seat, err := e.checkTurn(seatIndex, ActionBid)
	if err != nil {
		return e.reject(seatIndex, ActionBid, err)
	}

	if number < MinBid || number > MaxBid {
		return e.reject(seatIndex, ActionBid, newError(KindInvalidBid, "bids must be between %d and %d", MinBid, MaxBid))
	}

	if !suit.Valid() {
		return e.reject(seatIndex, ActionBid, newError(KindInvalidBid, "unknown suit: %q", string(suit)))
	}

	if !e.bid.supersedes(number, suit) {
		return e.reject(seatIndex, ActionBid, newError(KindInvalidBid, "your bid must beat %d%s", e.bid.number, e.bid.suit.Symbol()))
	}

	e.bid.number = number
	e.bid.suit = suit
	e.bid.bidder = seatIndex

	e.logger.WithFields(logrus.Fields{
		"seat":   seatIndex,
		"number": number,
		"suit":   suit,
	}).Debug("bid")

	e.sendLogMessages(newLogMessage(seat.Index, nil, "{} bid %d%s", number, suit.Symbol()))
	e.advanceBidding()
	return nil
}

// Pass drops the seat out of the bidding for the rest of the round
func (e *Engine) Pass(seatIndex int) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	seat, err := e.checkTurn(seatIndex, ActionPass)
	if err != nil {
		return e.reject(seatIndex, ActionPass, err)
	}

	e.bid.passed[seatIndex] = true

	e.logger.WithField("seat", seatIndex).Debug("pass")
	e.sendLogMessages(newLogMessage(seat.Index, nil, "{} passed"))
	e.advanceBidding()
	return nil
}

// advanceBidding ends the bidding, redeals, or moves to the next bidder
func (e *Engine) advanceBidding() {
	passed := e.bid.passedCount()

	if passed == NumSeats && e.bid.bidder < 0 {
		e.notify(Broadcast, NotifyBiddingUpdate, BiddingUpdate{Bid: e.bidState()})
		e.startRound(e.roundNo, true)
		return
	}

	if passed >= NumSeats-1 && e.bid.bidder >= 0 {
		e.finishBidding()
		return
	}

	e.turn = e.bid.nextTurn(e.turn)
	e.notify(Broadcast, NotifyBiddingUpdate, BiddingUpdate{Bid: e.bidState()})
	e.sendTurn()
}

// finishBidding seals the trump and opens the declaring phase
func (e *Engine) finishBidding() {
	winner := e.table.seats[e.bid.bidder]
	e.trump = e.bid.suit
	winner.declare = e.bid.number

	e.phase = PhaseDeclaring
	e.turn = winner.Index

	e.logger.WithFields(logrus.Fields{
		"round":  e.roundNo,
		"seat":   winner.Index,
		"number": e.bid.number,
		"trump":  e.trump,
	}).Info("bidding won")

	e.notify(Broadcast, NotifyBiddingUpdate, BiddingUpdate{Bid: e.bidState()})
	e.sendRoster()
	e.sendLogMessages(newLogMessage(winner.Index, nil, "{} won the bid with %d, %s is trump", e.bid.number, e.trump.Symbol()))
	e.promptDeclare(Broadcast)
}
