package gto

import (
	"fmt"
	rand "math/rand/v2"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pokerforge/gtoadvisor/analysis"
	"github.com/pokerforge/gtoadvisor/classification"
	"github.com/pokerforge/gtoadvisor/internal/randutil"
	"github.com/pokerforge/gtoadvisor/poker"
)

// DefaultBlendRatio is the probability of preferring the engine's own
// recommendation over an external exploitative one when they disagree.
const DefaultBlendRatio = 0.7

// Config carries the advisor's construction-time settings. Built once
// by the caller and passed in, never read from ambient state.
type Config struct {
	Seed       int64
	BlendRatio float64
	Profile    Profile
}

// Advisor composes hand evaluation, range lookup, frequency
// computation and sizing into a single recommendation per decision
// point. One advisor serves one agent, synchronously.
type Advisor struct {
	rng        *rand.Rand
	logger     *log.Logger
	model      *analysis.RangeModel
	calc       *FrequencyCalculator
	sizer      *SizingOptimizer
	tracker    *TendencyTracker
	blendRatio float64
}

// NewAdvisor creates an advisor from explicit configuration.
func NewAdvisor(cfg Config, logger *log.Logger) *Advisor {
	ratio := cfg.BlendRatio
	if ratio <= 0 || ratio > 1 {
		ratio = DefaultBlendRatio
	}
	profile := cfg.Profile
	if profile == (Profile{}) {
		profile = DefaultProfile()
	}
	return &Advisor{
		rng:        randutil.New(cfg.Seed),
		logger:     logger.WithPrefix("advisor"),
		model:      analysis.NewRangeModel(),
		calc:       NewFrequencyCalculator(profile),
		sizer:      NewSizingOptimizer(),
		tracker:    NewTendencyTracker(),
		blendRatio: ratio,
	}
}

// Tracker exposes the advisor's opponent-tendency accumulator so the
// game loop can feed it actions and round-end reveals.
func (a *Advisor) Tracker() *TendencyTracker {
	return a.tracker
}

// Decide produces a recommendation for one decision point. It never
// panics past this boundary: any failure degrades to a safe fallback
// result with the cause logged.
func (a *Advisor) Decide(sit *Situation) (result DecisionResult) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("decision computation failed, using fallback", "cause", r)
			result = a.fallback(sit, fmt.Sprintf("computation failed: %v", r))
		}
	}()

	if len(sit.ValidActions) == 0 {
		a.logger.Warn("situation carries no legal actions")
		return a.fallback(sit, "no legal actions supplied")
	}
	if len(sit.HoleCards) != 2 {
		a.logger.Warn("situation carries malformed hole cards", "cards", sit.HoleCards)
		return a.fallback(sit, "malformed hole cards")
	}

	// Unparseable cards score 0.0 and play as the weakest hand.
	strength := analysis.EvaluateTokens(sit.HoleCards, sit.CommunityCards)
	board, _ := poker.ParseHand(sit.CommunityCards...)
	texture := classification.Assess(board)

	rangeAnalysis := a.analyzeRange(sit)
	aggression := a.situationAggression(sit)

	dist := a.calc.Compute(sit, strength, texture.Texture, aggression)
	action := SampleAction(dist, a.rng.Float64())
	sizing := a.sizer.Size(sit, classifySizing(sit, strength), strength, texture.Texture)

	result = DecisionResult{
		Action:      action,
		Amount:      a.amountFor(sit, action, sizing),
		Confidence:  confidenceFor(dist, action),
		Frequencies: dist,
		Sizing:      sizing,
		Range:       rangeAnalysis,
		Reasoning:   reasoning(sit, strength, texture, dist, action, rangeAnalysis),
	}

	a.logger.Debug("decision",
		"street", sit.Street,
		"position", sit.Position,
		"strength", fmt.Sprintf("%.2f", strength),
		"texture", texture.Texture,
		"action", action,
		"amount", result.Amount)
	return result
}

// DecideBlended combines the engine's recommendation with an external
// exploitative one. Agreeing actions average their amounts by the
// blend ratio; disagreeing actions resolve by a weighted coin flip
// with the blend ratio as the probability of keeping the engine's.
func (a *Advisor) DecideBlended(sit *Situation, exploit *ExploitSuggestion) DecisionResult {
	result := a.Decide(sit)
	if exploit == nil || result.Fallback {
		return result
	}

	if exploit.Action == result.Action {
		blended := a.blendRatio*float64(result.Amount) + (1-a.blendRatio)*float64(exploit.Amount)
		result.Amount = clampAmount(sit, result.Action, int(blended+0.5))
		result.Reasoning += "; sizing blended with exploitative line"
		return result
	}

	if a.rng.Float64() < a.blendRatio {
		return result
	}

	a.logger.Debug("exploitative override", "gto", result.Action, "exploit", exploit.Action)
	result.Action = exploit.Action
	result.Amount = clampAmount(sit, exploit.Action, exploit.Amount)
	result.Confidence = confidenceFor(result.Frequencies, exploit.Action)
	result.Reasoning += fmt.Sprintf("; overridden by exploitative %s", exploit.Action)
	return result
}

// analyzeRange reports preflop range fit. Postflop situations keep the
// label for diagnostics but skip membership checks.
func (a *Advisor) analyzeRange(sit *Situation) RangeAnalysis {
	label := poker.LabelFromTokens(sit.HoleCards[0], sit.HoleCards[1])
	ra := RangeAnalysis{HandLabel: label}
	if label == "" || sit.Street != Preflop {
		return ra
	}
	position := sit.Position.String()
	ra.InOpenRange = a.model.InRange(label, position, "preflop", analysis.ContextOpen)
	ra.InDefendRange = a.model.InRange(label, position, "preflop", analysis.ContextDefend)
	ra.RangeStrength = a.model.Strength(label, a.model.Lookup(position, "preflop", analysis.ContextOpen))
	return ra
}

// situationAggression returns the aggression factor of the most recent
// raiser, or neutral when nobody has raised.
func (a *Advisor) situationAggression(sit *Situation) float64 {
	for i := len(sit.OpponentActions) - 1; i >= 0; i-- {
		if sit.OpponentActions[i].Action == ActionRaise {
			return a.tracker.AggressionFactor(sit.OpponentActions[i].Actor)
		}
	}
	return neutralAggression
}

func (a *Advisor) amountFor(sit *Situation, action Action, sizing SizingRecommendation) int {
	switch action {
	case ActionRaise:
		return a.sizer.Amount(sit, sizing)
	case ActionCall:
		if va, ok := sit.ValidAction(ActionCall); ok {
			return va.MinAmount
		}
		return sit.CallAmount
	default:
		return 0
	}
}

// fallback builds the degraded-mode result: call when legal and affordable,
// fold otherwise, flagged so callers can tell it from a real recommendation.
func (a *Advisor) fallback(sit *Situation, cause string) DecisionResult {
	action := ActionCall
	amount := sit.CallAmount
	if va, ok := sit.ValidAction(ActionCall); ok {
		amount = va.MinAmount
	}
	if len(sit.ValidActions) == 0 || amount > sit.StackSize {
		action = ActionFold
		amount = 0
	}
	if _, ok := sit.ValidAction(action); !ok && len(sit.ValidActions) > 0 {
		action = sit.ValidActions[0].Action
		amount = sit.ValidActions[0].MinAmount
	}
	return DecisionResult{
		Action:      action,
		Amount:      max(amount, 0),
		Confidence:  0.3,
		Frequencies: Distribution{action: 1.0},
		Reasoning:   fmt.Sprintf("fallback: %s", cause),
		Fallback:    true,
	}
}

// classifySizing picks the intent behind a potential raise.
func classifySizing(sit *Situation, strength float64) SizingType {
	if sit.Street == Preflop || strength >= 0.5 {
		return SizingValue
	}
	if sit.CallAmount == 0 && (sit.Street == Turn || sit.Street == River) {
		return SizingProbe
	}
	if strength < 0.35 {
		return SizingBluff
	}
	return SizingMixed
}

// confidenceFor scales the chosen action's own frequency into [0.2, 1].
// A forced low-probability pick still carries the floor confidence.
func confidenceFor(dist Distribution, action Action) float64 {
	c := dist[action]*0.8 + 0.2
	return clampFloat(c, 0.2, 1.0)
}

// reasoning renders a human-readable justification naming the dominant
// frequency and range fit.
func reasoning(sit *Situation, strength float64, texture classification.BoardAnalysis, dist Distribution, action Action, ra RangeAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: strength %.2f", sit.Street, sit.Position, strength)
	if sit.Street != Preflop {
		fmt.Fprintf(&b, " on a %s board", texture.Texture)
	} else if ra.HandLabel != "" {
		fmt.Fprintf(&b, " with %s", ra.HandLabel)
		if ra.InOpenRange {
			b.WriteString(" (in opening range)")
		} else if ra.InDefendRange {
			b.WriteString(" (in defending range)")
		} else {
			b.WriteString(" (outside range)")
		}
	}
	fmt.Fprintf(&b, "; policy %s; chose %s at %.0f%%", formatDistribution(dist), action, dist[action]*100)
	return b.String()
}

// formatDistribution renders frequencies in the fixed sampling order.
func formatDistribution(dist Distribution) string {
	actions := make([]Action, 0, len(dist))
	for action := range dist {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		parts = append(parts, fmt.Sprintf("%s %.0f%%", action, dist[action]*100))
	}
	return strings.Join(parts, " / ")
}

func clampAmount(sit *Situation, action Action, amount int) int {
	if action == ActionRaise {
		if va, ok := sit.ValidAction(ActionRaise); ok && va.MinAmount != RaiseDisallowed {
			amount = max(amount, va.MinAmount)
			if va.MaxAmount > 0 {
				amount = min(amount, va.MaxAmount)
			}
		}
	}
	return min(max(amount, 0), sit.StackSize)
}
