package history

import (
	"context"
	"errors"
	"time"

	"tarneeb-server/pkg/deck"
	"tarneeb-server/pkg/playable/tarneeb"
)

// ErrDuplicateRound is returned when a round has already been recorded for the table
var ErrDuplicateRound = errors.New("round has already been recorded")

// ErrNotRecording is returned by the no-op recorder when rounds are requested
var ErrNotRecording = errors.New("round history is not being recorded")

// Round is a scored round
type Round struct {
	ID            int64               `json:"id"`
	TableID       string              `json:"tableId"`
	Round         int                 `json:"round"`
	Trump         deck.Suit           `json:"trump"`
	Bid           int                 `json:"bid"`
	Bidder        int                 `json:"bidder"`
	SumOfDeclares int                 `json:"sumOfDeclares"`
	Lines         []tarneeb.ScoreLine `json:"lines"`
	Created       time.Time           `json:"created"`
}

// Recorder stores scored rounds
type Recorder interface {
	RecordRound(ctx context.Context, tableID string, scored tarneeb.RoundScored) error
	Rounds(ctx context.Context, start int64, rows int) ([]*Round, error)
}

// NopRecorder is used when no database is configured
type NopRecorder struct{}

// RecordRound does nothing
func (NopRecorder) RecordRound(context.Context, string, tarneeb.RoundScored) error {
	return nil
}

// Rounds returns ErrNotRecording
func (NopRecorder) Rounds(context.Context, int64, int) ([]*Round, error) {
	return nil, ErrNotRecording
}
