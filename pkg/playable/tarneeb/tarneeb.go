package tarneeb

import (
	"errors"
	"sync"
	"time"

	"tarneeb-server/internal/util"
	"tarneeb-server/pkg/deck"
	"tarneeb-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Engine is the authoritative state of a single tarneeb table
// Every exported method takes the engine lock for the whole validate, mutate, notify sequence
type Engine struct {
	lock     sync.Mutex
	logger   logrus.FieldLogger
	options  Options
	notifier Notifier

	table TableState
	deck  *deck.Deck

	// round data
	roundNo        int
	phase          Phase
	startingBidder int
	turn           int
	trump          deck.Suit
	bid            bidState
	sumOfDeclares  int
	trick          []PlayedCard
	leadingSuit    deck.Suit
	tricksPlayed   int

	// settling is true while a completed trick is held on the table
	settling bool

	timer Timer
	// epoch invalidates callbacks of timers that were cancelled after they started firing
	epoch int

	fault  error
	closed bool
}

// NewEngine returns an empty table
func NewEngine(logger logrus.FieldLogger, notifier Notifier, opts Options) *Engine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if notifier == nil {
		notifier = nopNotifier{}
	}

	return &Engine{
		logger:   logger.WithField("game", "tarneeb"),
		options:  opts.withDefaults(),
		notifier: notifier,
		phase:    PhaseWaiting,
		bid:      newBidState(),
	}
}

// Name returns "tarneeb"
func (e *Engine) Name() string {
	return "tarneeb"
}

// Phase returns the current phase
func (e *Engine) Phase() Phase {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.phase
}

// Round returns the current round number
func (e *Engine) Round() int {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.roundNo
}

// Fault returns the error that halted the engine, if any
func (e *Engine) Fault() error {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.fault
}

// Close cancels pending timers. Every later intent is rejected
func (e *Engine) Close() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.cancelTimer()
	e.closed = true
}

// JoinTable seats a player and returns the seat index
// The fourth player to join starts a round
func (e *Engine) JoinTable(name string) (int, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.closed {
		return -1, ErrEngineClosed
	}

	if name == "" {
		name = util.GetRandomName()
	}

	seat, err := e.table.join(name)
	if err != nil {
		return -1, err
	}

	e.logger.WithFields(logrus.Fields{
		"seat": seat.Index,
		"name": name,
	}).Info("player joined")

	e.sendRoster()
	e.sendLogMessages(newLogMessage(seat.Index, nil, "{} sat down"))

	if e.table.Full() && (e.phase == PhaseWaiting || e.phase == PhaseHalted) {
		e.startRound(e.roundNo+1, false)
	}

	return seat.Index, nil
}

// Leave frees the seat. Leaving in the middle of a round aborts it
func (e *Engine) Leave(seatIndex int) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	seat, err := e.table.leave(seatIndex)
	if err != nil {
		return err
	}

	e.logger.WithField("seat", seatIndex).Info("player left")
	e.sendRoster()
	e.sendLogMessages(newLogMessage(-1, nil, "%s left the table", seat.Name))

	if e.phase != PhaseWaiting {
		e.abortRound(seat.Name + " left the table")
	}

	return nil
}

// checkTurn validates that the seat may take the action now
func (e *Engine) checkTurn(seatIndex int, action ActionKind) (*Seat, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}

	seat, err := e.table.seat(seatIndex)
	if err != nil {
		return nil, err
	}

	phase, ok := action.phase()
	if ok && e.phase == PhaseWaiting {
		return nil, newError(KindDeckNotReady, "cannot %s before the cards are dealt", action)
	}

	if ok && e.phase != phase {
		return nil, newError(KindWrongPhase, "cannot %s during %s", action, e.phase)
	}

	if action == ActionPlayCard && e.settling {
		return nil, newError(KindWrongPhase, "the trick is settling")
	}

	if e.turn != seatIndex {
		return nil, ErrNotYourTurn
	}

	return seat, nil
}

// reject logs a rejected intent and passes the error through
func (e *Engine) reject(seat int, action ActionKind, err error) error {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		e.logger.WithFields(logrus.Fields{
			"seat":   seat,
			"action": action.String(),
			"kind":   gameErr.Kind,
			"phase":  e.phase.String(),
		}).Debug("intent rejected")
	}

	return err
}

// halt stops the round after an internal invariant is broken
func (e *Engine) halt(fault *FaultError) error {
	e.cancelTimer()
	e.phase = PhaseHalted
	e.settling = false
	e.fault = fault

	e.logger.WithError(fault).WithField("round", e.roundNo).Error("round halted")
	e.notify(Broadcast, NotifyFault, Fault{Message: fault.Error()})
	e.sendLogMessages(newLogMessage(-1, nil, "The round was stopped because of a server error"))

	return fault
}

// schedule arms the engine's single timer. Any previous timer is cancelled
func (e *Engine) schedule(d time.Duration, fn func()) {
	e.cancelTimer()

	e.epoch++
	epoch := e.epoch
	e.timer = e.options.Scheduler.AfterFunc(d, func() {
		e.lock.Lock()
		defer e.lock.Unlock()

		if e.closed || e.epoch != epoch {
			return
		}

		e.timer = nil
		fn()
	})
}

func (e *Engine) cancelTimer() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}

	e.epoch++
}

func (e *Engine) notify(seat int, kind NotificationKind, data interface{}) {
	e.notifier.Notify(Notification{
		Kind: kind,
		Seat: seat,
		Data: data,
	})
}

func (e *Engine) sendRoster() {
	e.notify(Broadcast, NotifyRosterChanged, RosterChanged{Seats: e.table.States()})
}

func (e *Engine) sendTurn() {
	e.notify(Broadcast, NotifyTurnChanged, TurnChanged{Seat: e.turn, Phase: e.phase})
}

func (e *Engine) sendLogMessages(msgs ...*playable.LogMessage) {
	e.notify(Broadcast, NotifyLog, Log{Messages: msgs})
}
