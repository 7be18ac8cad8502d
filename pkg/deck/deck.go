package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"tarneeb-server/internal/rng"
)

// Size is the number of cards in a complete deck
const Size = 52

// ErrDeckNotReady is returned by Deal() when the deck does not hold exactly 52 cards
var ErrDeckNotReady = errors.New("the deck must hold 52 cards before dealing")

// ErrCorruptDeck is returned by Deal() when a card is repeated or not a standard card
var ErrCorruptDeck = errors.New("the deck contains a duplicate or invalid card")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		rng: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetSeed will make shuffles reproducible
// This should only be used by tests
func (d *Deck) SetSeed(seed int64) {
	d.rng = rng.Seeded(seed)
}

// SetGenerator replaces the random number generator used by Shuffle()
func (d *Deck) SetGenerator(g rng.Generator) {
	d.rng = g
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// The deck is always rebuilt first, so a partially dealt deck becomes whole again
func (d *Deck) Shuffle() {
	d.buildDeck()
	rng.Shuffle(d.rng, len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal partitions the deck round-robin into n hands: card i goes to hand i mod n
// The deck is empty afterwards
func (d *Deck) Deal(n int) ([]Hand, error) {
	if len(d.Cards) != Size || n <= 0 {
		return nil, ErrDeckNotReady
	}

	seen := make(map[Card]bool, Size)
	hands := make([]Hand, n)
	for i := range hands {
		hands[i] = make(Hand, 0, Size/n+1)
	}

	for i, card := range d.Cards {
		if seen[card] || !card.Valid() {
			return nil, ErrCorruptDeck
		}

		seen[card] = true
		hands[i%n] = append(hands[i%n], card)
	}

	d.Cards = nil
	return hands, nil
}

// HashCode returns a SHA1 hash code of the deck order. Logged to identify a shuffle
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
