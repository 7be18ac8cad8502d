package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	assert.NoError(t, r.RecordRound(context.Background(), "table", scoredRound(1)))

	rounds, err := r.Rounds(context.Background(), 0, 10)
	assert.Nil(t, rounds)
	assert.Equal(t, ErrNotRecording, err)
}
