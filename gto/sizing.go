package gto

import (
	"fmt"
	"math"

	"github.com/pokerforge/gtoadvisor/classification"
)

// sizingBand clamps final sizes per intent: big-blind multiples
// preflop, pot fractions postflop.
type sizingBand struct {
	min float64
	max float64
}

var sizingBands = map[SizingType]sizingBand{
	SizingValue: {0.33, 2.0},
	SizingBluff: {0.50, 1.25},
	SizingMixed: {0.33, 1.5},
	SizingProbe: {0.33, 1.5},
}

var preflopBand = sizingBand{2.0, 4.0}

// valueBases scales the value-bet pot fraction with hand strength.
// Ordered strongest first.
var valueBases = []struct {
	threshold float64
	fraction  float64
}{
	{0.80, 1.00},
	{0.65, 0.75},
	{0.50, 0.50},
	{0.00, 0.75},
}

// Bluffs use one fixed fraction so bet size gives away nothing.
const bluffFraction = 0.75

const (
	probeFraction = 0.65
	mixedFraction = 0.60
)

var positionSizeFactor = map[Position]float64{
	Button:         1.10,
	Cutoff:         1.05,
	Hijack:         1.00,
	MiddlePosition: 0.95,
	SmallBlind:     0.95,
	UnderTheGun:    0.90,
	BigBlind:       0.90,
}

// Stack depth relative to the pot, postflop.
const (
	shallowStackPots = 8.0
	deepStackPots    = 20.0
)

// SizingOptimizer converts a decision point and intent into a bet
// size, as a big-blind multiple preflop or a pot fraction postflop.
type SizingOptimizer struct{}

// NewSizingOptimizer creates a sizing optimizer.
func NewSizingOptimizer() *SizingOptimizer {
	return &SizingOptimizer{}
}

// Size computes the recommended size for a raise in this situation.
func (o *SizingOptimizer) Size(sit *Situation, sizingType SizingType, strength float64, texture classification.BoardTexture) SizingRecommendation {
	if sit.Street == Preflop {
		return o.preflopSize(sit, strength)
	}
	return o.postflopSize(sit, sizingType, strength, texture)
}

// preflopSize picks an open multiple from effective stack depth, then
// adjusts for position and hand strength. Shallow stacks tighten the
// ceiling as well as the base.
func (o *SizingOptimizer) preflopSize(sit *Situation, strength float64) SizingRecommendation {
	base := 2.5
	depth := "standard"
	band := preflopBand
	if sit.BigBlind > 0 {
		switch bbDepth := sit.StackSize / sit.BigBlind; {
		case bbDepth < 25:
			base = 2.0
			depth = "shallow"
			band.max = 3.0
		case bbDepth > 100:
			base = 3.0
			depth = "deep"
		}
	}

	size := base * positionSizeFactor[sit.Position]
	if strength >= 0.85 {
		size *= 1.2
	}
	size = clampFloat(size, band.min, band.max)

	return SizingRecommendation{
		Optimal:     size,
		Min:         band.min,
		Max:         band.max,
		Type:        SizingValue,
		Explanation: fmt.Sprintf("%.1fx open from %s at %s stack depth", size, sit.Position, depth),
	}
}

func (o *SizingOptimizer) postflopSize(sit *Situation, sizingType SizingType, strength float64, texture classification.BoardTexture) SizingRecommendation {
	var fraction float64
	switch sizingType {
	case SizingBluff:
		fraction = bluffFraction
	case SizingProbe:
		fraction = probeFraction
	case SizingMixed:
		fraction = mixedFraction
	default:
		for _, base := range valueBases {
			if strength >= base.threshold {
				fraction = base.fraction
				break
			}
		}
	}

	fraction *= positionSizeFactor[sit.Position]
	fraction *= textureSizeFactor(sizingType, texture)

	// Shallow stacks bet smaller to keep commitment sane, deep stacks
	// bet larger to pressure stacks behind.
	if sit.PotSize > 0 {
		switch pots := float64(sit.StackSize) / float64(sit.PotSize); {
		case pots < shallowStackPots:
			fraction *= 0.8
		case pots > deepStackPots:
			fraction *= 1.2
		}
	}

	band := sizingBands[sizingType]
	fraction = clampFloat(fraction, band.min, band.max)

	return SizingRecommendation{
		Optimal:     fraction,
		Min:         band.min,
		Max:         band.max,
		Type:        sizingType,
		Explanation: fmt.Sprintf("%.0f%% pot %s bet on a %s board", fraction*100, sizingType, texture),
	}
}

// textureSizeFactor scales sizes by board texture per intent. Value
// bets grow on wet boards to charge draws; bluffs and probes shrink
// there because fold equity drops, and grow on dry boards where one
// bet often takes the pot.
func textureSizeFactor(sizingType SizingType, texture classification.BoardTexture) float64 {
	switch sizingType {
	case SizingValue:
		switch texture {
		case classification.Wet:
			return 1.15
		case classification.Dry:
			return 0.85
		}
	case SizingBluff, SizingProbe:
		switch texture {
		case classification.Wet:
			return 0.85
		case classification.Dry:
			return 1.10
		}
	}
	return 1.0
}

// Amount converts a sizing recommendation into an absolute chip
// amount, clamped to the engine's raise bounds and the available stack.
func (o *SizingOptimizer) Amount(sit *Situation, rec SizingRecommendation) int {
	var amount int
	if sit.Street == Preflop {
		amount = int(math.Round(rec.Optimal * float64(sit.BigBlind)))
	} else {
		amount = int(math.Round(rec.Optimal * float64(sit.PotSize)))
	}

	if va, ok := sit.ValidAction(ActionRaise); ok && va.MinAmount != RaiseDisallowed {
		amount = max(amount, va.MinAmount)
		if va.MaxAmount > 0 {
			amount = min(amount, va.MaxAmount)
		}
	}
	return min(amount, sit.StackSize)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
