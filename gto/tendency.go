package gto

import (
	"github.com/pokerforge/gtoadvisor/analysis"
	"github.com/pokerforge/gtoadvisor/poker"
)

// neutralAggression is the factor returned for opponents with no
// recorded history, leaving frequencies unadjusted.
const neutralAggression = 1.0

type opponentStats struct {
	raises int
	calls  int
	folds  int
}

func (s *opponentStats) total() int {
	return s.raises + s.calls + s.folds
}

// TendencyTracker accumulates per-opponent action history and reduces
// it to an aggression factor. Each advisor owns its own tracker, so no
// state is shared across agents.
type TendencyTracker struct {
	stats       map[string]*opponentStats
	roundRaised map[string]bool
	valueRange  *analysis.Range
}

// NewTendencyTracker creates an empty tracker.
func NewTendencyTracker() *TendencyTracker {
	return &TendencyTracker{
		stats:       make(map[string]*opponentStats),
		roundRaised: make(map[string]bool),
		valueRange:  analysis.MustParseRange("TT+,AQs+,AKo"),
	}
}

// Observe records one opponent action.
func (t *TendencyTracker) Observe(actor string, action Action) {
	s, ok := t.stats[actor]
	if !ok {
		s = &opponentStats{}
		t.stats[actor] = s
	}
	switch action {
	case ActionRaise:
		s.raises++
		t.roundRaised[actor] = true
	case ActionCall:
		s.calls++
	case ActionFold:
		s.folds++
	}
}

// ObserveReveal consumes a round-end showdown payload. An opponent who
// raised during the round and shows a hand outside a tight value range
// is counted as an extra aggressive sample, since the raise was a bluff.
func (t *TendencyTracker) ObserveReveal(reveal RoundReveal) {
	for actor, tokens := range reveal.HoleCards {
		if !t.roundRaised[actor] || len(tokens) != 2 {
			continue
		}
		label := poker.LabelFromTokens(tokens[0], tokens[1])
		if label == "" || t.valueRange.Contains(label) {
			continue
		}
		if s, ok := t.stats[actor]; ok {
			s.raises++
		}
	}
	clear(t.roundRaised)
}

// AggressionFactor returns the opponent's normalized aggression on a
// 0-2 scale, where 1.0 is neutral. Twice the share of raises among all
// observed actions.
func (t *TendencyTracker) AggressionFactor(actor string) float64 {
	s, ok := t.stats[actor]
	if !ok || s.total() == 0 {
		return neutralAggression
	}
	return float64(s.raises) / float64(s.total()) * 2.0
}

// Observations returns how many actions have been recorded for an actor.
func (t *TendencyTracker) Observations(actor string) int {
	if s, ok := t.stats[actor]; ok {
		return s.total()
	}
	return 0
}
