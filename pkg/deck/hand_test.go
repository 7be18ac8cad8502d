package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_HasSuit(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasSuit(Clubs))
	assert.True(t, hand.HasSuit(Diamonds))
	assert.False(t, hand.HasSuit(Hearts))
	assert.False(t, Hand{}.HasSuit(Hearts))
}

func TestHand_Discard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.Equal(t, 1, hand.Discard(CardFromString("3c")))
	assert.Equal(t, "2c,4d", CardsToString(hand))
	assert.Equal(t, 0, hand.Discard(CardFromString("3c")))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", CardsToString(h))
}

func TestSortForDisplay(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("2d,14c,3s,13h,14s,10c,5h,12d"))
	sorted := SortForDisplay(hand)
	a.Equal("14s,3s,13h,5h,14c,10c,12d,2d", CardsToString(sorted))
	a.Equal("2d,14c,3s,13h,14s,10c,5h,12d", CardsToString(hand), "input must not change")

	again := SortForDisplay(sorted)
	a.Equal(sorted, again, "sorting is idempotent")
}

func TestSortForDisplay_dealtHands(t *testing.T) {
	d := New()
	d.SetSeed(3)
	d.Shuffle()
	hands, err := d.Deal(4)
	assert.NoError(t, err)

	for _, hand := range hands {
		sorted := SortForDisplay(hand)
		assert.Equal(t, sorted, SortForDisplay(sorted))
		assert.ElementsMatch(t, hand, sorted)
	}
}
