package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card represents a single card as a bit position in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs]
type Card uint64

// Hand is also a uint64 but can contain multiple cards.
// Multiple cards are represented by multiple bits set.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

// NewCard creates a card from rank and suit
func NewCard(rank, suit uint8) Card {
	offset := suit*13 + rank
	return Card(1) << offset
}

// GetBitPosition returns which bit position this card occupies (0-51)
func (c Card) GetBitPosition() uint8 {
	if c == 0 {
		return 255 // Invalid card
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12)
func (c Card) Rank() uint8 {
	pos := c.GetBitPosition()
	if pos == 255 {
		return 255
	}
	return pos % 13
}

// Suit returns the suit of the card (0-3)
func (c Card) Suit() uint8 {
	pos := c.GetBitPosition()
	if pos == 255 {
		return 255
	}
	return pos / 13
}

// String returns the canonical representation (e.g., "As", "Kh")
func (c Card) String() string {
	ranks := "23456789TJQKA"
	suits := "cdhs"

	rank := c.Rank()
	suit := c.Suit()

	if rank > 12 || suit > 3 {
		return "??"
	}

	return string(ranks[rank]) + string(suits[suit])
}

func parseRankChar(b byte) (uint8, bool) {
	switch b {
	case '2':
		return Two, true
	case '3':
		return Three, true
	case '4':
		return Four, true
	case '5':
		return Five, true
	case '6':
		return Six, true
	case '7':
		return Seven, true
	case '8':
		return Eight, true
	case '9':
		return Nine, true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	}
	return 0, false
}

func parseSuitChar(b byte) (uint8, bool) {
	switch b {
	case 'c', 'C':
		return Clubs, true
	case 'd', 'D':
		return Diamonds, true
	case 'h', 'H':
		return Hearts, true
	case 's', 'S':
		return Spades, true
	}
	return 0, false
}

// ParseCard parses a card token into a Card. The token order is
// auto-detected: "As" and "sA" both parse to the ace of spades. A
// 3-character form spelling the ten as "10" is accepted in either
// order ("10h", "h10"). Exactly one rank and one suit must be present.
func ParseCard(s string) (Card, error) {
	orig := s
	if len(s) == 3 {
		// Only the "10" spelling of the ten produces a 3-char token.
		switch {
		case strings.HasPrefix(s, "10"):
			s = "T" + s[2:]
		case strings.HasSuffix(s, "10"):
			s = s[:1] + "T"
		default:
			return 0, fmt.Errorf("invalid card token: %s", orig)
		}
	}
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card token: %s", orig)
	}

	// Rank-first ("As") or suit-first ("sA"). A byte like 's' is only
	// treated as a suit when the other byte supplies the rank.
	if rank, ok := parseRankChar(s[0]); ok {
		if suit, ok := parseSuitChar(s[1]); ok {
			return NewCard(rank, suit), nil
		}
	}
	if suit, ok := parseSuitChar(s[0]); ok {
		if rank, ok := parseRankChar(s[1]); ok {
			return NewCard(rank, suit), nil
		}
	}

	return 0, fmt.Errorf("invalid card token: %s", orig)
}

// ParseHand parses a list of card tokens into a single Hand.
func ParseHand(tokens ...string) (Hand, error) {
	var h Hand
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return 0, err
		}
		if h.HasCard(c) {
			return 0, fmt.Errorf("duplicate card: %s", c)
		}
		h.AddCard(c)
	}
	return h, nil
}

// NewHand creates a hand from multiple cards
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// Cards returns the individual cards in the hand, lowest bit first.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	rest := uint64(h)
	for rest != 0 {
		low := rest & -rest
		cards = append(cards, Card(low))
		rest &^= low
	}
	return cards
}

// GetSuitMask returns the cards of a specific suit as a bitmask
func (h Hand) GetSuitMask(suit uint8) uint16 {
	offset := suit * 13
	return uint16((h >> offset) & 0x1FFF)
}

// GetRankMask returns a bitmask of which ranks are present
func (h Hand) GetRankMask() uint16 {
	mask := uint16(0)
	for suit := uint8(0); suit < 4; suit++ {
		mask |= h.GetSuitMask(suit)
	}
	return mask
}

// String returns the cards in the hand as space-separated tokens.
func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
