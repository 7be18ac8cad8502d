package tarneeb

import "github.com/sirupsen/logrus"

// ScoreDelta returns the change to a seat's score for the round
//
// Making the declare exactly earns declare² + 10, or for a zero declare 10 points when the
// table is "up" (sum of declares over 13) and 30 when it is "down". Missing the declare costs
// 10 points per trick of difference, except a missed zero declare on a "down" table,
// which costs 30 − (difference − 1) × 10.
func ScoreDelta(declare, takes, sumOfDeclares int) int {
	diff := declare - takes
	if diff < 0 {
		diff = -diff
	}

	if diff == 0 {
		if declare == 0 {
			if sumOfDeclares > TricksPerRound {
				return 10
			}

			return 30
		}

		return declare*declare + 10
	}

	if declare == 0 && sumOfDeclares < TricksPerRound {
		return -(30 - (diff-1)*10)
	}

	return -(diff * 10)
}

// scoreRound applies the deltas for the round. It runs at most once per round
func (e *Engine) scoreRound() {
	if e.phase != PhaseTrickPlay {
		return
	}

	e.phase = PhaseScoring
	e.settling = false

	scored := RoundScored{
		Round:         e.roundNo,
		Trump:         e.trump,
		Bid:           e.bid.number,
		Bidder:        e.bid.bidder,
		SumOfDeclares: e.sumOfDeclares,
		Lines:         make([]ScoreLine, 0, NumSeats),
	}

	made := make([]int, 0, NumSeats)
	for _, seat := range e.table.occupied() {
		delta := ScoreDelta(seat.declare, seat.takes, e.sumOfDeclares)
		seat.score += delta
		if delta > 0 {
			made = append(made, seat.Index)
		}

		scored.Lines = append(scored.Lines, ScoreLine{
			Seat:    seat.Index,
			Name:    seat.Name,
			Declare: seat.declare,
			Takes:   seat.takes,
			Delta:   delta,
			Score:   seat.score,
		})
	}

	e.logger.WithFields(logrus.Fields{
		"round":  e.roundNo,
		"deltas": scored.Deltas(),
	}).Info("round scored")

	e.notify(Broadcast, NotifyRoundScored, scored)
	e.sendRoster()

	switch len(made) {
	case 0:
		e.sendLogMessages(newLogMessage(-1, nil, "Nobody made their declare"))
	case NumSeats:
		e.sendLogMessages(newLogMessage(-1, nil, "Everyone made their declare"))
	default:
		e.sendLogMessages(newLogMessageWithSeats(made, "{} made their declare"))
	}

	e.startingBidder = (e.bid.bidder + 1) % NumSeats
	e.schedule(e.options.RoundPause, e.nextRound)
}
