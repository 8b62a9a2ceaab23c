// Package gto implements a frequency-based decision engine for no-limit
// hold'em. It recommends mixed-strategy actions from static policy tables
// adjusted for hand strength, board texture, position and opponent history.
package gto

// Action represents the type of action the engine can recommend
type Action int

const (
	// ActionFold discards the hand and forfeits interest in the pot
	ActionFold Action = iota
	// ActionCall matches the current bet
	ActionCall
	// ActionRaise increases the current bet
	ActionRaise
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	default:
		return "unknown"
	}
}

// ActionFromString converts a string to an Action
func ActionFromString(s string) Action {
	switch s {
	case "fold":
		return ActionFold
	case "call", "check":
		return ActionCall
	case "raise", "bet", "all-in", "allin":
		return ActionRaise
	default:
		return ActionFold
	}
}

// Position represents a seat relative to the dealer button
type Position int

const (
	// UnderTheGun acts first preflop after the blinds
	UnderTheGun Position = iota
	// MiddlePosition
	MiddlePosition
	// Hijack (two before the button)
	Hijack
	// Cutoff (one before the button)
	Cutoff
	// Button acts last postflop
	Button
	// SmallBlind
	SmallBlind
	// BigBlind closes the preflop action
	BigBlind
)

// String returns the string representation of a position
func (p Position) String() string {
	switch p {
	case UnderTheGun:
		return "UTG"
	case MiddlePosition:
		return "MP"
	case Hijack:
		return "HJ"
	case Cutoff:
		return "CO"
	case Button:
		return "BTN"
	case SmallBlind:
		return "SB"
	case BigBlind:
		return "BB"
	default:
		return "unknown"
	}
}

// PositionFromString converts a string to a Position. Unknown strings
// resolve to the big blind, the tightest configured seat.
func PositionFromString(s string) Position {
	switch s {
	case "UTG", "Under the Gun":
		return UnderTheGun
	case "MP", "Middle Position":
		return MiddlePosition
	case "HJ", "Hijack":
		return Hijack
	case "CO", "Cutoff":
		return Cutoff
	case "BTN", "Button", "Dealer":
		return Button
	case "SB", "Small Blind":
		return SmallBlind
	default:
		return BigBlind
	}
}

// Advantage returns the positional advantage on a 0-1 scale. Later
// positions act with more information and score higher.
func (p Position) Advantage() float64 {
	switch p {
	case Button:
		return 1.0
	case Cutoff:
		return 0.9
	case Hijack:
		return 0.8
	case MiddlePosition:
		return 0.6
	case SmallBlind:
		return 0.4
	case UnderTheGun:
		return 0.3
	case BigBlind:
		return 0.2
	default:
		return 0.2
	}
}

// Street represents the current betting round
type Street int

const (
	// Preflop before any community cards
	Preflop Street = iota
	// Flop after the first 3 community cards
	Flop
	// Turn after the 4th community card
	Turn
	// River after the 5th community card
	River
)

// String returns the string representation of a street
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// StreetFromString converts a string to a Street
func StreetFromString(s string) Street {
	switch s {
	case "flop":
		return Flop
	case "turn":
		return Turn
	case "river":
		return River
	default:
		return Preflop
	}
}

// RaiseDisallowed is the sentinel minimum carried by a raise entry when
// raising is not a legal action.
const RaiseDisallowed = -1

// ValidAction represents a legal action with its amount bounds. Fold
// carries zero amounts, call carries the amount to call in both fields,
// and raise carries the engine's minimum and maximum raise sizes.
type ValidAction struct {
	Action    Action
	MinAmount int
	MaxAmount int
}

// OpponentAction is one observed entry in the betting history.
type OpponentAction struct {
	Actor  string
	Action Action
	Amount int
}

// Situation describes a single decision point. It is constructed per
// decision by the surrounding game engine and never reused.
type Situation struct {
	Street          Street
	Position        Position
	HoleCards       []string
	CommunityCards  []string
	PotSize         int
	StackSize       int
	CallAmount      int
	BigBlind        int
	OpponentActions []OpponentAction
	ActiveOpponents int
	ValidActions    []ValidAction
}

// ValidAction returns the entry for the given action, if present.
func (s *Situation) ValidAction(a Action) (ValidAction, bool) {
	for _, va := range s.ValidActions {
		if va.Action == a {
			return va, true
		}
	}
	return ValidAction{}, false
}

// RaiseAllowed reports whether the situation carries a usable raise entry.
func (s *Situation) RaiseAllowed() bool {
	va, ok := s.ValidAction(ActionRaise)
	return ok && va.MinAmount != RaiseDisallowed
}

// FacingRaise reports whether an opponent has raised in this round.
func (s *Situation) FacingRaise() bool {
	for _, oa := range s.OpponentActions {
		if oa.Action == ActionRaise {
			return true
		}
	}
	return false
}

// SizingType classifies the intent behind a recommended bet size
type SizingType int

const (
	// SizingValue bets for value with a made hand
	SizingValue SizingType = iota
	// SizingBluff bets to fold out better hands
	SizingBluff
	// SizingMixed covers hands bet for a blend of value and protection
	SizingMixed
	// SizingProbe takes a small stab after the action checks through
	SizingProbe
)

// String returns the string representation of a sizing type
func (t SizingType) String() string {
	switch t {
	case SizingValue:
		return "value"
	case SizingBluff:
		return "bluff"
	case SizingMixed:
		return "mixed"
	case SizingProbe:
		return "probe"
	default:
		return "unknown"
	}
}

// SizingRecommendation is a bet size expressed as a big-blind multiple
// preflop or a pot fraction postflop, with the band it was clamped to.
type SizingRecommendation struct {
	Optimal     float64
	Min         float64
	Max         float64
	Type        SizingType
	Explanation string
}

// RangeAnalysis reports how the hole cards relate to the static
// preflop range tables.
type RangeAnalysis struct {
	HandLabel     string
	InOpenRange   bool
	InDefendRange bool
	RangeStrength float64
}

// DecisionResult is the engine's complete recommendation for one
// decision point, consumed immediately by the caller.
type DecisionResult struct {
	Action      Action
	Amount      int
	Confidence  float64
	Frequencies Distribution
	Sizing      SizingRecommendation
	Range       RangeAnalysis
	Reasoning   string
	Fallback    bool
}

// RoundReveal is the read-only payload the game loop delivers at the
// end of a round, carrying the hole cards shown at showdown keyed by
// actor name.
type RoundReveal struct {
	RoundID   string
	HoleCards map[string][]string
}

// ExploitSuggestion is an externally computed exploitative
// recommendation that can be blended with the engine's own output.
type ExploitSuggestion struct {
	Action Action
	Amount int
}
