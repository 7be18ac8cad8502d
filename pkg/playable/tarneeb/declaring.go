package tarneeb

import (
	"github.com/sirupsen/logrus"
)

func (e *Engine) declaredCount() int {
	count := 0
	for _, seat := range e.table.occupied() {
		if seat.declared {
			count++
		}
	}

	return count
}

// nextUndeclared returns the next seat after from that has not declared
func (e *Engine) nextUndeclared(from int) int {
	for i := 1; i <= NumSeats; i++ {
		index := (from + i) % NumSeats
		if seat := e.table.seats[index]; seat != nil && !seat.declared {
			return index
		}
	}

	return from
}

// declarePrompt describes the limits for the seat on turn
func (e *Engine) declarePrompt() DeclarePrompt {
	prompt := DeclarePrompt{
		Seat:      e.turn,
		Forbidden: -1,
	}

	if e.turn == e.bid.bidder {
		prompt.Minimum = e.bid.number
	}

	if e.declaredCount() == NumSeats-1 {
		if forbidden := TricksPerRound - e.sumOfDeclares; forbidden >= 0 {
			prompt.Forbidden = forbidden
		}
	}

	return prompt
}

// promptDeclare sends the prompt to the recipient (or to everyone)
func (e *Engine) promptDeclare(recipient int) {
	e.notify(recipient, NotifyDeclarePrompt, e.declarePrompt())
	if recipient == Broadcast {
		e.sendTurn()
	}
}

// Declare seals the number of tricks the seat expects to take
func (e *Engine) Declare(seatIndex, count int) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	seat, err := e.checkTurn(seatIndex, ActionDeclare)
	if err != nil {
		return e.reject(seatIndex, ActionDeclare, err)
	}

	if err := e.validateDeclare(seat, count); err != nil {
		e.promptDeclare(seatIndex)
		return e.reject(seatIndex, ActionDeclare, err)
	}

	seat.declare = count
	seat.declared = true
	e.sumOfDeclares += count

	e.logger.WithFields(logrus.Fields{
		"seat":  seatIndex,
		"count": count,
		"sum":   e.sumOfDeclares,
	}).Debug("declare")

	e.sendRoster()
	e.sendLogMessages(newLogMessage(seatIndex, nil, "{} declared %d", count))

	if e.declaredCount() < NumSeats {
		e.turn = e.nextUndeclared(seatIndex)
		e.promptDeclare(Broadcast)
		return nil
	}

	e.phase = PhaseTrickPlay
	e.turn = e.bid.bidder

	direction := "down"
	if e.sumOfDeclares > TricksPerRound {
		direction = "up"
	}

	e.logger.WithFields(logrus.Fields{
		"round": e.roundNo,
		"sum":   e.sumOfDeclares,
	}).Info("declaring finished")

	e.sendLogMessages(newLogMessage(-1, nil, "The declares add up to %d (%s)", e.sumOfDeclares, direction))
	e.notify(Broadcast, NotifyTrickUpdate, TrickUpdate{Cards: []PlayedCard{}})
	e.sendTurn()
	return nil
}

func (e *Engine) validateDeclare(seat *Seat, count int) error {
	if count < 0 || count > TricksPerRound {
		return newError(KindInvalidDeclare, "declares must be between 0 and %d", TricksPerRound)
	}

	if seat.Index == e.bid.bidder && count < e.bid.number {
		return newError(KindDeclareBelowBid, "your declare cannot be less than your bid of %d", e.bid.number)
	}

	if e.declaredCount() == NumSeats-1 && e.sumOfDeclares+count == TricksPerRound {
		return newError(KindDeclareSumForbidden, "the sum of declares cannot be %d", TricksPerRound)
	}

	return nil
}
