package analysis

import (
	"github.com/pokerforge/gtoadvisor/poker"
)

// Strength bands for postflop made-hand classes. Bands are disjoint so
// the made-hand ordering is always reflected in the scalar score.
var madeHandBands = map[poker.MadeHand]float64{
	poker.HighCard:      0.15,
	poker.OnePair:       0.30,
	poker.TwoPair:       0.40,
	poker.Trips:         0.50,
	poker.Straight:      0.58,
	poker.Flush:         0.66,
	poker.FullHouse:     0.88,
	poker.Quads:         0.92,
	poker.StraightFlush: 0.95,
}

const (
	nonPairFloor   = 0.20
	strengthCeil   = 0.95
	pairFloor      = 0.55
	overpairFloor  = 0.75
	overpairSpread = 0.10
)

// Evaluate scores a hand in [0,1]. With no community cards the score
// is a preflop heuristic; with a board it reflects the best made hand.
// A hole hand without exactly two cards scores 0.0.
func Evaluate(hole, community poker.Hand) float64 {
	if hole.CountCards() != 2 {
		return 0.0
	}
	if community.CountCards() == 0 {
		return evaluatePreflop(hole)
	}
	return evaluatePostflop(hole, community)
}

// EvaluateTokens parses card tokens and scores the hand. Malformed or
// missing hole cards score 0.0 rather than failing.
func EvaluateTokens(holeTokens, communityTokens []string) float64 {
	if len(holeTokens) != 2 {
		return 0.0
	}
	hole, err := poker.ParseHand(holeTokens...)
	if err != nil {
		return 0.0
	}
	var community poker.Hand
	if len(communityTokens) > 0 {
		community, err = poker.ParseHand(communityTokens...)
		if err != nil {
			return 0.0
		}
	}
	return Evaluate(hole, community)
}

func evaluatePreflop(hole poker.Hand) float64 {
	cards := hole.Cards()
	r1 := int(cards[0].Rank())
	r2 := int(cards[1].Rank())

	high, low := r1, r2
	if low > high {
		high, low = low, high
	}

	// Pocket pairs scale monotonically from 0.55 (22) to 0.95 (AA).
	if high == low {
		return pairFloor + float64(high)/12.0*(strengthCeil-pairFloor)
	}

	highVal := high + 2 // 2-14
	strength := 0.20 + float64(highVal-2)*0.025

	gap := high - low
	penalty := 0.04 * float64(gap-1)
	if penalty > 0.18 {
		penalty = 0.18
	}
	strength -= penalty

	if cards[0].Suit() == cards[1].Suit() {
		strength += 0.08
	}
	switch {
	case gap == 1:
		strength += 0.06
	case gap <= 3:
		strength += 0.03
	}
	if high == int(poker.Ace) && low == int(poker.King) {
		strength += 0.20
	}

	return clamp(strength, nonPairFloor, strengthCeil)
}

func evaluatePostflop(hole, community poker.Hand) float64 {
	class := poker.DetectMadeHand(hole, community)

	// An overpair outranks a board-matched pair by a wide margin.
	if class == poker.OnePair && poker.IsOverpair(hole, community) {
		pairRank := float64(hole.Cards()[0].Rank())
		return overpairFloor + pairRank/12.0*overpairSpread
	}

	return madeHandBands[class]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
