package deck

import "sort"

// displaySuitOrder is the left-to-right suit order used when showing a hand
var displaySuitOrder = map[Suit]int{
	Spades:   0,
	Hearts:   1,
	Clubs:    2,
	Diamonds: 3,
}

// Hand represents a collection of cards
// The sort.Interface implementation orders cards for display: ♠ ♥ ♣ ♦, high rank first
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if si, sj := displaySuitOrder[h[i].Suit], displaySuitOrder[h[j].Suit]; si != sj {
		return si < sj
	}

	return h[i].Rank > h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// SortForDisplay returns a sorted copy of the hand. It never affects game play
func SortForDisplay(h Hand) Hand {
	sorted := h.Clone()
	sort.Stable(sorted)
	return sorted
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if the hand holds at least one card of the suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// Discard will discard the specified card, returning how many copies were removed
func (h *Hand) Discard(card Card) int {
	count := 0
	newHand := make(Hand, 0, len(*h))
	for _, c := range *h {
		if c.Equal(card) {
			count++
		} else {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return count
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
