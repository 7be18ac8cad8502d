package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Len(d.Cards, 52)
	a.Equal(Card{Rank: 2, Suit: Clubs}, d.Cards[0])
	a.Equal(Card{Rank: 14, Suit: Spades}, d.Cards[51])

	unique := make(map[Card]bool)
	for _, card := range d.Cards {
		unique[card] = true
	}
	a.Equal(52, len(unique))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.SetSeed(1)
	d1.Shuffle()

	d2 := New()
	d2.SetSeed(1)
	d2.Shuffle()

	a.Equal(d1.HashCode(), d2.HashCode(), "same seed, same order")
	a.NotEqual(New().HashCode(), d1.HashCode())
	a.ElementsMatch(New().Cards, d1.Cards)

	// a second shuffle should not return the same order
	hash := d1.HashCode()
	d1.Shuffle()
	a.NotEqual(hash, d1.HashCode())
}

func TestDeck_Shuffle_rebuildsPartialDeck(t *testing.T) {
	d := New()
	d.Cards = d.Cards[2:]
	assert.Len(t, d.Cards, 50)

	d.Shuffle()
	assert.Len(t, d.Cards, 52)
	assert.ElementsMatch(t, New().Cards, d.Cards)
}

func TestDeck_Deal(t *testing.T) {
	a := assert.New(t)

	for seed := int64(1); seed <= 25; seed++ {
		d := New()
		d.SetSeed(seed)
		d.Shuffle()
		order := append([]Card{}, d.Cards...)

		hands, err := d.Deal(4)
		a.NoError(err)
		a.Equal(4, len(hands))
		a.Empty(d.Cards)

		union := make(map[Card]bool)
		for _, hand := range hands {
			a.Equal(13, len(hand))
			for _, card := range hand {
				a.False(union[card], "duplicate card %s", card)
				union[card] = true
			}
		}
		a.Equal(52, len(union))

		// round-robin assignment over the shuffled order
		for i, card := range order {
			a.Equal(card, hands[i%4][i/4])
		}
	}
}

func TestDeck_Deal_notReady(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Cards = d.Cards[1:]
	hands, err := d.Deal(4)
	a.Nil(hands)
	a.Equal(ErrDeckNotReady, err)

	d.Shuffle()
	_, err = d.Deal(4)
	a.NoError(err)

	_, err = d.Deal(4)
	a.Equal(ErrDeckNotReady, err, "cannot deal the same deck twice")
}

func TestDeck_HashCode(t *testing.T) {
	a := assert.New(t)

	d := New()
	hash := d.HashCode()
	a.Len(hash, 40)
	a.Equal(hash, New().HashCode())

	d.Cards[0], d.Cards[1] = d.Cards[1], d.Cards[0]
	a.NotEqual(hash, d.HashCode())
}

func TestDeck_Deal_duplicate(t *testing.T) {
	d := New()
	d.Cards[1] = d.Cards[0]
	_, err := d.Deal(4)
	assert.Equal(t, ErrCorruptDeck, err)
}
