package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits is every suit in bidding-strength order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Strength is used to break ties between equal bids: ♣ < ♦ < ♥ < ♠
func (s Suit) Strength() int {
	switch s {
	case Clubs:
		return 1
	case Diamonds:
		return 2
	case Hearts:
		return 3
	case Spades:
		return 4
	}

	return 0
}

// Valid returns true if the suit is one of the four standard suits
func (s Suit) Valid() bool {
	return s.Strength() > 0
}

// Symbol returns the unicode symbol for the suit, or "?" for an unknown suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}

	return "?"
}

// ParseSuit accepts the suit name, its first letter, or its symbol
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clubs", "c", "♣":
		return Clubs, nil
	case "diamonds", "d", "♦":
		return Diamonds, nil
	case "hearts", "h", "♥":
		return Hearts, nil
	case "spades", "s", "♠":
		return Spades, nil
	}

	return "", fmt.Errorf("unknown suit: %q", s)
}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	return rank + c.Suit.Symbol()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Valid returns true if the card could come from a standard deck
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank >= 2 && c.Rank <= Ace
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %q", s)
	}

	rank, _ := strconv.Atoi(match[1])
	suit, err := ParseSuit(match[2])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardFromString is like ParseCard, but panics on a bad card. Intended for tests and constants
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
// A card without a suit is written with a "?" suit
func CardToString(card Card) string {
	suit := "?"
	if card.Suit != "" {
		suit = string(card.Suit)[:1]
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
