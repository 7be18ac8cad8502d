package tarneeb

import (
	"time"

	"tarneeb-server/internal/rng"
)

// game constants
const (
	NumSeats       = 4
	TricksPerRound = 13
	MinBid         = 5
	MaxBid         = 13
)

// Options are options for creating a new table
type Options struct {
	// SettleDelay is how long a completed trick stays on the table before it is cleared
	SettleDelay time.Duration
	// RoundPause is how long the scores are shown before the next round is dealt
	RoundPause time.Duration

	Scheduler Scheduler
	Generator rng.Generator
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		SettleDelay: time.Second * 3,
		RoundPause:  time.Second * 5,
	}
}

func (o Options) withDefaults() Options {
	if o.Scheduler == nil {
		o.Scheduler = RealScheduler{}
	}

	if o.Generator == nil {
		o.Generator = rng.Crypto{}
	}

	return o
}
