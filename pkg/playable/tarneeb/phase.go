package tarneeb

import "fmt"

// Phase is where the table is in the round state machine
type Phase int

// phases, in the order a round moves through them
const (
	// PhaseWaiting means fewer than four seats are taken
	PhaseWaiting Phase = iota
	PhaseBidding
	PhaseDeclaring
	PhaseTrickPlay
	PhaseScoring
	// PhaseHalted means the engine detected a broken invariant and stopped the round
	PhaseHalted
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseBidding:
		return "bidding"
	case PhaseDeclaring:
		return "declaring"
	case PhaseTrickPlay:
		return "trickPlay"
	case PhaseScoring:
		return "scoring"
	case PhaseHalted:
		return "halted"
	}

	return fmt.Sprintf("phase(%d)", int(p))
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ActionKind is an inbound intent
type ActionKind int

// actions a seat can take
const (
	ActionJoin ActionKind = iota
	ActionLeave
	ActionBid
	ActionPass
	ActionDeclare
	ActionPlayCard
)

func (a ActionKind) String() string {
	switch a {
	case ActionJoin:
		return "join"
	case ActionLeave:
		return "leave"
	case ActionBid:
		return "bid"
	case ActionPass:
		return "pass"
	case ActionDeclare:
		return "declare"
	case ActionPlayCard:
		return "playCard"
	}

	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction returns the action for the wire name
func ParseAction(s string) (ActionKind, error) {
	switch s {
	case "join":
		return ActionJoin, nil
	case "leave":
		return ActionLeave, nil
	case "bid":
		return ActionBid, nil
	case "pass":
		return ActionPass, nil
	case "declare":
		return ActionDeclare, nil
	case "playCard":
		return ActionPlayCard, nil
	}

	return 0, newError(KindUnknownAction, "unknown action: %s", s)
}

// phase returns the only phase the action is accepted in
// join and leave are accepted in any phase, so ok is false for them
func (a ActionKind) phase() (phase Phase, ok bool) {
	switch a {
	case ActionJoin, ActionLeave:
		return 0, false
	case ActionBid, ActionPass:
		return PhaseBidding, true
	case ActionDeclare:
		return PhaseDeclaring, true
	case ActionPlayCard:
		return PhaseTrickPlay, true
	}

	panic(fmt.Sprintf("unknown action: %d", int(a)))
}
