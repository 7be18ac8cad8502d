package tarneeb

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreDelta(t *testing.T) {
	tests := []struct {
		declare int
		takes   int
		sum     int
		delta   int
	}{
		// zero declares
		{0, 0, 15, 10},
		{0, 0, 11, 30},
		{0, 1, 11, -30},
		{0, 2, 11, -20},
		{0, 3, 12, -10},
		{0, 1, 14, -10},
		{0, 2, 15, -20},

		// made it
		{1, 1, 12, 11},
		{5, 5, 14, 35},
		{7, 7, 12, 59},
		{13, 13, 15, 179},

		// missed it
		{5, 4, 14, -10},
		{5, 7, 14, -20},
		{3, 0, 12, -30},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d of %d (sum %d)", test.takes, test.declare, test.sum), func(t *testing.T) {
			assert.Equal(t, test.delta, ScoreDelta(test.declare, test.takes, test.sum))
		})
	}
}
