package tarneeb

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"tarneeb-server/internal/rng"
	"tarneeb-server/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	lock  sync.Mutex
	notes []Notification
}

func (r *recorder) Notify(n Notification) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.notes = append(r.notes, n)
}

func (r *recorder) all() []Notification {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]Notification{}, r.notes...)
}

func (r *recorder) ofKind(kind NotificationKind) []Notification {
	notes := make([]Notification, 0)
	for _, n := range r.all() {
		if n.Kind == kind {
			notes = append(notes, n)
		}
	}

	return notes
}

func (r *recorder) last(kind NotificationKind) (Notification, bool) {
	notes := r.ofKind(kind)
	if len(notes) == 0 {
		return Notification{}, false
	}

	return notes[len(notes)-1], true
}

func (r *recorder) reset() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.notes = nil
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// newTestEngine returns an engine with a manual scheduler and a seeded deck
func newTestEngine(seed int64) (*Engine, *recorder, *ManualScheduler) {
	rec := &recorder{}
	scheduler := &ManualScheduler{}
	e := NewEngine(testLogger(), rec, Options{
		SettleDelay: time.Second * 3,
		RoundPause:  time.Second * 5,
		Scheduler:   scheduler,
		Generator:   rng.Seeded(seed),
	})

	return e, rec, scheduler
}

// newFullTable seats four players, which starts round 1
func newFullTable(t *testing.T, seed int64) (*Engine, *recorder, *ManualScheduler) {
	t.Helper()

	e, rec, scheduler := newTestEngine(seed)
	for i := 0; i < NumSeats; i++ {
		seat, err := e.JoinTable(fmt.Sprintf("Player %d", i+1))
		require.NoError(t, err)
		require.Equal(t, i, seat)
	}

	require.Equal(t, PhaseBidding, e.Phase())
	return e, rec, scheduler
}

// setupTrickPlay skips straight to trick play with the given hands
// seat 0 won the bid with 5 and leads the first trick
func setupTrickPlay(t *testing.T, trump deck.Suit, hands []string, declares []int) (*Engine, *recorder, *ManualScheduler) {
	t.Helper()

	e, rec, scheduler := newFullTable(t, 1)
	require.Len(t, hands, NumSeats)
	require.Len(t, declares, NumSeats)

	e.phase = PhaseTrickPlay
	e.trump = trump
	e.bid.number = 5
	e.bid.suit = trump
	e.bid.bidder = 0
	e.turn = 0
	e.sumOfDeclares = 0
	for i, seat := range e.table.seats {
		seat.hand = deck.CardsFromString(hands[i])
		seat.declare = declares[i]
		seat.declared = true
		e.sumOfDeclares += declares[i]
	}

	rec.reset()
	return e, rec, scheduler
}

// legalCard returns the first card the seat may play
func legalCard(e *Engine, seat int) deck.Card {
	hand := e.table.seats[seat].hand
	if len(e.trick) > 0 && hand.HasSuit(e.leadingSuit) {
		for _, card := range hand {
			if card.Suit == e.leadingSuit {
				return card
			}
		}
	}

	return hand[0]
}

// finishBiddingAtSeatZero has seat 0 bid and the others pass
func finishBiddingAtSeatZero(t *testing.T, e *Engine, number int, suit deck.Suit) {
	t.Helper()

	require.Equal(t, 0, e.turn)
	require.NoError(t, e.Bid(0, number, suit))
	require.NoError(t, e.Pass(1))
	require.NoError(t, e.Pass(2))
	require.NoError(t, e.Pass(3))
	require.Equal(t, PhaseDeclaring, e.Phase())
}
