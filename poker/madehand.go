package poker

import (
	"math/bits"
)

// MadeHand enumerates the made-hand classes ordered from weakest to strongest.
type MadeHand uint8

const (
	HighCard MadeHand = iota
	OnePair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

// String returns a human-readable hand description.
func (m MadeHand) String() string {
	switch m {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case Trips:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case Quads:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// DetectMadeHand classifies the best made hand available from hole and
// board cards combined. It works on any card count from two upward; with
// fewer than five cards only pair-type hands and high card are possible.
func DetectMadeHand(hole, board Hand) MadeHand {
	all := hole | board

	var suitMasks [4]uint16
	var rankMask uint16
	for suit := uint8(0); suit < 4; suit++ {
		mask := all.GetSuitMask(suit)
		suitMasks[suit] = mask
		rankMask |= mask
	}

	for _, suitMask := range suitMasks {
		if bits.OnesCount16(suitMask) >= 5 {
			if straightHighFromMask(suitMask) > 0 {
				return StraightFlush
			}
			// Flush confirmed, but a paired board could still make
			// quads or a full house elsewhere.
			if class := quadsOrBoat(suitMasks); class != HighCard {
				return class
			}
			return Flush
		}
	}

	if class := quadsOrBoat(suitMasks); class != HighCard {
		return class
	}

	if straightHighFromMask(rankMask) > 0 {
		return Straight
	}

	return pairClass(suitMasks)
}

// IsOverpair reports whether the hole cards are a pocket pair ranked
// strictly above every board card. False when the board is empty.
func IsOverpair(hole, board Hand) bool {
	if hole.CountCards() != 2 || board.CountCards() == 0 {
		return false
	}

	cards := hole.Cards()
	if cards[0].Rank() != cards[1].Rank() {
		return false
	}

	pairRank := cards[0].Rank()
	boardHigh := bits.Len16(board.GetRankMask()) - 1
	return int(pairRank) > boardHigh
}

// quadsOrBoat returns Quads or FullHouse when present, HighCard otherwise.
func quadsOrBoat(suitMasks [4]uint16) MadeHand {
	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]

	quadsMask := s0 & s1 & s2 & s3
	if quadsMask != 0 {
		return Quads
	}

	tripsMask := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	if tripsMask == 0 {
		return HighCard
	}

	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripsMask
	if pairsMask != 0 || bits.OnesCount16(tripsMask) >= 2 {
		return FullHouse
	}
	return HighCard
}

// pairClass returns Trips, TwoPair, OnePair or HighCard.
func pairClass(suitMasks [4]uint16) MadeHand {
	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]

	tripsMask := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	if tripsMask != 0 {
		return Trips
	}

	pairsMask := (s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)
	switch bits.OnesCount16(pairsMask) {
	case 0:
		return HighCard
	case 1:
		return OnePair
	default:
		return TwoPair
	}
}

// straightHighFromMask returns the high-card rank of the best straight
// present in the rank mask (0 if none). The wheel (A-2-3-4-5) reports
// its five as rank high 3.
func straightHighFromMask(mask uint16) uint8 {
	const wheelMask = 0x100F // Ace + 2-3-4-5
	mask &= 0x1FFF

	// Bitwise cascade identifies five consecutive ranks in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := uint8(bits.Len16(seq) - 1)
		return low + 4
	}

	if mask&wheelMask == wheelMask {
		return 3
	}

	return 0
}
