// Package classification provides board texture analysis for poker
// decision making: coordination scoring, texture buckets, and draw
// detection on efficient bit-packed poker.Hand representations.
package classification

import (
	"math/bits"

	"github.com/pokerforge/gtoadvisor/poker"
)

// BoardTexture buckets a board's coordination from dry to wet.
type BoardTexture int

const (
	Dry BoardTexture = iota
	Dynamic
	Wet
)

func (bt BoardTexture) String() string {
	switch bt {
	case Dry:
		return "dry"
	case Dynamic:
		return "dynamic"
	case Wet:
		return "wet"
	default:
		return "unknown"
	}
}

// BoardAnalysis is the full texture assessment of a board.
type BoardAnalysis struct {
	Texture         BoardTexture
	Coordination    float64 // 0-1, higher is more draw-dense
	HasFlushDraw    bool
	HasStraightDraw bool
}

// FlushInfo contains information about flush potential on a board
type FlushInfo struct {
	MaxSuitCount int
	DominantSuit *uint8
	IsMonotone   bool // Single suit (3+ cards)
	IsRainbow    bool // All different suits
}

// StraightInfo contains information about straight potential on a board
type StraightInfo struct {
	ConnectedCards int // Longest sequence of ranks within one step of each other
	Gaps           int // Number of gaps in sequences
	HasAce         bool
	BroadwayCards  int // Number of T, J, Q, K, A cards
}

// Assess computes the texture assessment for a board. Boards with
// fewer than three cards are always dry with a nominal coordination.
func Assess(board poker.Hand) BoardAnalysis {
	if board.CountCards() < 3 {
		return BoardAnalysis{Texture: Dry, Coordination: 0.2}
	}

	coordination := Coordination(board)

	texture := Dynamic
	switch {
	case coordination >= 0.7:
		texture = Wet
	case coordination <= 0.3:
		texture = Dry
	}

	flush := AnalyzeFlushPotential(board)
	straight := AnalyzeStraightPotential(board)

	return BoardAnalysis{
		Texture:         texture,
		Coordination:    coordination,
		HasFlushDraw:    flush.MaxSuitCount >= 3,
		HasStraightDraw: straight.ConnectedCards >= 3,
	}
}

// Coordination scores how coordinated the board's ranks and suits are,
// in [0,1]. Each adjacent sorted-rank gap of two or less adds 0.3, a
// gap of three adds 0.15, and three or more cards of one suit add 0.2.
// A monotone board is floored at 0.6 since a flush is already possible.
func Coordination(board poker.Hand) float64 {
	if board.CountCards() < 3 {
		return 0.0
	}

	ranks := sortedRanks(board)

	coordination := 0.0
	for i := 1; i < len(ranks); i++ {
		gap := ranks[i] - ranks[i-1]
		switch {
		case gap <= 2:
			coordination += 0.3
		case gap <= 3:
			coordination += 0.15
		}
	}

	flush := AnalyzeFlushPotential(board)
	if flush.MaxSuitCount >= 3 {
		coordination += 0.2
	}
	if flush.IsMonotone && coordination < 0.6 {
		coordination = 0.6
	}

	if coordination > 1.0 {
		coordination = 1.0
	}
	return coordination
}

// AnalyzeFlushPotential analyzes flush potential on the board using bit operations
func AnalyzeFlushPotential(board poker.Hand) FlushInfo {
	var suitCounts [4]int
	var suitMasks [4]uint16

	for suit := uint8(0); suit < 4; suit++ {
		suitMask := board.GetSuitMask(suit)
		suitCounts[suit] = bits.OnesCount16(suitMask)
		suitMasks[suit] = suitMask
	}

	var maxCount int
	var dominantSuit *uint8
	bestRankForSuit := -1
	nonZeroSuits := 0

	// Iterate suits in reverse order so tied counts prefer higher suits
	// when ranks are identical.
	for suit := len(suitCounts) - 1; suit >= 0; suit-- {
		count := suitCounts[suit]
		if count == 0 {
			continue
		}

		nonZeroSuits++

		highestRank := bits.Len16(suitMasks[suit]) - 1
		if count > maxCount || (count == maxCount && highestRank > bestRankForSuit) {
			maxCount = count
			bestRankForSuit = highestRank
			suitCopy := uint8(suit)
			dominantSuit = &suitCopy
		}
	}

	cardCount := board.CountCards()

	return FlushInfo{
		MaxSuitCount: maxCount,
		DominantSuit: dominantSuit,
		IsMonotone:   nonZeroSuits == 1 && cardCount >= 3,
		IsRainbow:    nonZeroSuits == cardCount && cardCount >= 3,
	}
}

// AnalyzeStraightPotential analyzes straight potential using the rank bitmask
func AnalyzeStraightPotential(board poker.Hand) StraightInfo {
	cardCount := board.CountCards()
	if cardCount == 0 {
		return StraightInfo{}
	}

	rankMask := board.GetRankMask()
	hasAce := (rankMask & (1 << poker.Ace)) != 0

	broadwayCount := 0
	for rank := poker.Ten; rank <= poker.Ace; rank++ {
		if rankMask&(1<<rank) != 0 {
			broadwayCount++
		}
	}

	ranks := sortedRanks(board)

	maxConnected := 1
	currentConnected := 1
	totalGaps := 0

	for i := 1; i < len(ranks); i++ {
		gap := ranks[i] - ranks[i-1] - 1
		if gap == 0 {
			currentConnected++
		} else {
			if currentConnected > maxConnected {
				maxConnected = currentConnected
			}
			currentConnected = 1
			totalGaps += gap
		}
	}
	if currentConnected > maxConnected {
		maxConnected = currentConnected
	}

	// Wheel connectivity: treat the ace as rank -1 when low ranks are present.
	if hasAce {
		var lowRanks []int
		for _, rank := range ranks {
			if rank <= 3 {
				lowRanks = append(lowRanks, rank)
			}
		}

		if len(lowRanks) >= 2 {
			wheelRanks := append([]int{-1}, lowRanks...)
			wheelConnected := 1
			wheelMax := 1
			for i := 1; i < len(wheelRanks); i++ {
				if wheelRanks[i]-wheelRanks[i-1] == 1 {
					wheelConnected++
				} else {
					if wheelConnected > wheelMax {
						wheelMax = wheelConnected
					}
					wheelConnected = 1
				}
			}
			if wheelConnected > wheelMax {
				wheelMax = wheelConnected
			}
			if wheelMax > maxConnected {
				maxConnected = wheelMax
			}
		}
	}

	return StraightInfo{
		ConnectedCards: maxConnected,
		Gaps:           totalGaps,
		HasAce:         hasAce,
		BroadwayCards:  broadwayCount,
	}
}

// sortedRanks returns the distinct ranks on the board in ascending order.
func sortedRanks(board poker.Hand) []int {
	rankMask := board.GetRankMask()
	ranks := make([]int, 0, board.CountCards())
	for rank := 0; rank < 13; rank++ {
		if rankMask&(1<<rank) != 0 {
			ranks = append(ranks, rank)
		}
	}
	return ranks
}
