package tarneeb

import (
	"tarneeb-server/pkg/deck"
	"tarneeb-server/pkg/playable"
)

// Broadcast is the recipient of a notification intended for every seat
const Broadcast = -1

// NotificationKind identifies an outbound event
type NotificationKind string

// outbound events
const (
	NotifyRosterChanged NotificationKind = "rosterChanged"
	NotifyRoundStarted  NotificationKind = "roundStarted"
	NotifyRoundAborted  NotificationKind = "roundAborted"
	NotifyBiddingUpdate NotificationKind = "biddingUpdate"
	NotifyDeclarePrompt NotificationKind = "declarePrompt"
	NotifyTrickUpdate   NotificationKind = "trickUpdate"
	NotifyTrickResolved NotificationKind = "trickResolved"
	NotifyRoundScored   NotificationKind = "roundScored"
	NotifyTurnChanged   NotificationKind = "turnChanged"
	NotifyFault         NotificationKind = "fault"
	NotifyLog           NotificationKind = "log"
)

// Notification is an event for the transport layer to deliver
// Seat is the only recipient, or Broadcast
type Notification struct {
	Kind NotificationKind
	Seat int
	Data interface{}
}

// IsBroadcast returns true if every seat should receive the notification
func (n Notification) IsBroadcast() bool {
	return n.Seat == Broadcast
}

// Notifier receives notifications from the engine.
// Notify is called while the engine holds its lock: it must not block and must not call back into the engine
type Notifier interface {
	Notify(n Notification)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

// RosterChanged is sent when a seat joins or leaves, or when declares, takes or scores change
type RosterChanged struct {
	Seats []SeatState `json:"seats"`
}

// RoundStarted is sent privately to each seat with its own hand
type RoundStarted struct {
	Round          int       `json:"round"`
	Seat           int       `json:"seat"`
	Hand           deck.Hand `json:"hand"`
	StartingBidder int       `json:"startingBidder"`
	Redeal         bool      `json:"redeal"`
}

// RoundAborted is sent when a seat leaves in the middle of a round
type RoundAborted struct {
	Round  int    `json:"round"`
	Reason string `json:"reason"`
}

// BiddingUpdate is the public bidding state
type BiddingUpdate struct {
	Bid BidState `json:"bid"`
}

// DeclarePrompt asks a seat for its declare
type DeclarePrompt struct {
	Seat    int `json:"seat"`
	Minimum int `json:"minimum"`
	// Forbidden is the one value the last seat cannot declare, or -1
	Forbidden int `json:"forbidden"`
}

// TrickUpdate is sent after every card and when the trick is cleared
type TrickUpdate struct {
	Cards       []PlayedCard `json:"cards"`
	LeadingSuit deck.Suit    `json:"leadingSuit,omitempty"`
}

// TrickResolved is sent once the fourth card of a trick is played
type TrickResolved struct {
	Winner     int          `json:"winner"`
	Takes      int          `json:"takes"`
	Cards      []PlayedCard `json:"cards"`
	TricksLeft int          `json:"tricksLeft"`
}

// ScoreLine is a single seat's scoring for the round
type ScoreLine struct {
	Seat    int    `json:"seat"`
	Name    string `json:"name"`
	Declare int    `json:"declare"`
	Takes   int    `json:"takes"`
	Delta   int    `json:"delta"`
	Score   int    `json:"score"`
}

// RoundScored is sent when the round is scored
type RoundScored struct {
	Round         int         `json:"round"`
	Trump         deck.Suit   `json:"trump"`
	Bid           int         `json:"bid"`
	Bidder        int         `json:"bidder"`
	SumOfDeclares int         `json:"sumOfDeclares"`
	Lines         []ScoreLine `json:"lines"`
}

// Deltas returns the score change for each seat, indexed by seat
func (r RoundScored) Deltas() map[int]int {
	deltas := make(map[int]int, len(r.Lines))
	for _, line := range r.Lines {
		deltas[line.Seat] = line.Delta
	}

	return deltas
}

// TurnChanged is sent whenever a different seat must act
type TurnChanged struct {
	Seat  int   `json:"seat"`
	Phase Phase `json:"phase"`
}

// Fault is broadcast when the engine halts the round
type Fault struct {
	Message string `json:"message"`
}

// Log carries human readable game log lines
type Log struct {
	Messages []*playable.LogMessage `json:"messages"`
}
