package gto

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newTestAdvisor(seed int64) *Advisor {
	return NewAdvisor(Config{Seed: seed}, testLogger())
}

func TestDecideDeterministicUnderSeed(t *testing.T) {
	t.Parallel()

	sit := func() *Situation {
		s := testSituation(Preflop, Cutoff)
		s.HoleCards = []string{"Ah", "Kd"}
		return s
	}

	a := newTestAdvisor(42)
	b := newTestAdvisor(42)
	for i := 0; i < 20; i++ {
		got := a.Decide(sit())
		want := b.Decide(sit())
		require.Equal(t, want, got, "decision %d diverged", i)
	}
}

func TestDecidePremiumPairOnButton(t *testing.T) {
	t.Parallel()
	a := newTestAdvisor(1)

	sit := testSituation(Preflop, Button)
	sit.HoleCards = []string{"As", "Ad"}

	result := a.Decide(sit)
	require.False(t, result.Fallback)
	assert.GreaterOrEqual(t, result.Frequencies[ActionRaise], 0.5)
	assert.Equal(t, "AA", result.Range.HandLabel)
	assert.True(t, result.Range.InOpenRange)
	assert.Equal(t, 1.0, result.Range.RangeStrength)
	assert.NotEmpty(t, result.Reasoning)
}

func TestDecideTrashHandFacingRaise(t *testing.T) {
	t.Parallel()
	a := newTestAdvisor(1)

	sit := testSituation(Preflop, UnderTheGun)
	sit.HoleCards = []string{"7c", "2d"}
	sit.PotSize = 30
	sit.CallAmount = 20
	sit.OpponentActions = []OpponentAction{{Actor: "villain", Action: ActionRaise, Amount: 20}}
	sit.ValidActions = fullActions(20, 40, 1000)

	result := a.Decide(sit)
	require.False(t, result.Fallback)
	assert.GreaterOrEqual(t, result.Frequencies[ActionFold], 0.5)
	assert.Equal(t, "72o", result.Range.HandLabel)
	assert.False(t, result.Range.InOpenRange)
}

func TestDecideRaiseDisallowedNeverRaises(t *testing.T) {
	t.Parallel()

	sit := func() *Situation {
		s := testSituation(Flop, Button)
		s.HoleCards = []string{"As", "Ad"}
		s.CommunityCards = []string{"Ah", "7c", "2d"}
		s.CallAmount = 50
		s.ValidActions = fullActions(50, RaiseDisallowed, 0)
		return s
	}

	for seed := int64(0); seed < 50; seed++ {
		a := newTestAdvisor(seed)
		result := a.Decide(sit())
		require.NotEqual(t, ActionRaise, result.Action, "seed %d raised", seed)
		assert.Zero(t, result.Frequencies[ActionRaise])
		switch result.Action {
		case ActionCall:
			assert.Equal(t, 50, result.Amount)
		case ActionFold:
			assert.Zero(t, result.Amount)
		}
	}
}

func TestDecideFrequenciesSumToOne(t *testing.T) {
	t.Parallel()
	a := newTestAdvisor(7)

	sit := testSituation(Turn, SmallBlind)
	sit.HoleCards = []string{"Qh", "Jh"}
	sit.CommunityCards = []string{"Th", "9h", "2c", "7d"}

	result := a.Decide(sit)
	require.False(t, result.Fallback)
	assertNormalized(t, result.Frequencies)
}

func TestDecideConfidenceBounds(t *testing.T) {
	t.Parallel()
	a := newTestAdvisor(3)

	for i := 0; i < 30; i++ {
		sit := testSituation(Preflop, MiddlePosition)
		sit.HoleCards = []string{"9s", "8s"}
		result := a.Decide(sit)
		assert.GreaterOrEqual(t, result.Confidence, 0.2)
		assert.LessOrEqual(t, result.Confidence, 1.0)
	}
}

func TestDecideNoValidActionsFallsBack(t *testing.T) {
	t.Parallel()
	a := newTestAdvisor(1)

	sit := testSituation(Preflop, Button)
	sit.HoleCards = []string{"As", "Ad"}
	sit.ValidActions = nil

	result := a.Decide(sit)
	assert.True(t, result.Fallback)
	assert.Equal(t, ActionFold, result.Action)
	assert.Equal(t, 0, result.Amount)
	assert.Contains(t, result.Reasoning, "fallback")
	assert.InDelta(t, 0.3, result.Confidence, 0.2)
}

func TestDecideMalformedHoleCardsFallsBack(t *testing.T) {
	t.Parallel()
	a := newTestAdvisor(1)

	sit := testSituation(Preflop, Button)
	sit.HoleCards = []string{"As"}

	result := a.Decide(sit)
	assert.True(t, result.Fallback)
	assert.Equal(t, ActionCall, result.Action)
}

func TestDecideFallbackFoldsWhenCallUnaffordable(t *testing.T) {
	t.Parallel()
	a := newTestAdvisor(1)

	sit := testSituation(Preflop, Button)
	sit.HoleCards = nil
	sit.CallAmount = 500
	sit.StackSize = 100
	sit.ValidActions = fullActions(500, RaiseDisallowed, 0)

	result := a.Decide(sit)
	assert.True(t, result.Fallback)
	assert.Equal(t, ActionFold, result.Action)
	assert.Zero(t, result.Amount)
}

func TestDecideUnparseableCardsPlayWeak(t *testing.T) {
	t.Parallel()
	a := newTestAdvisor(1)

	sit := testSituation(Preflop, UnderTheGun)
	sit.HoleCards = []string{"Xx", "Yy"}

	result := a.Decide(sit)
	// Treated as the weakest hand, not an error.
	require.False(t, result.Fallback)
	assert.GreaterOrEqual(t, result.Frequencies[ActionFold], 0.5)
}

func TestDecideBlendedAgreementAveragesAmount(t *testing.T) {
	t.Parallel()

	sit := func() *Situation {
		s := testSituation(Preflop, Button)
		s.HoleCards = []string{"As", "Ad"}
		return s
	}

	// Find a seed whose unblended decision is a raise so agreement
	// blending has two amounts to average.
	var seed int64
	for ; seed < 100; seed++ {
		if newTestAdvisor(seed).Decide(sit()).Action == ActionRaise {
			break
		}
	}
	require.Less(t, seed, int64(100), "no raising seed found")

	plain := newTestAdvisor(seed).Decide(sit())
	blended := newTestAdvisor(seed).DecideBlended(sit(), &ExploitSuggestion{Action: ActionRaise, Amount: plain.Amount + 40})

	// 70/30 blend pulls the amount 12 chips toward the exploit size.
	assert.InDelta(t, float64(plain.Amount)+12, float64(blended.Amount), 1.0)
	assert.Contains(t, blended.Reasoning, "blended")
}

func TestDecideBlendedDisagreementIsSeedStable(t *testing.T) {
	t.Parallel()

	sit := func() *Situation {
		s := testSituation(Preflop, Button)
		s.HoleCards = []string{"As", "Ad"}
		return s
	}
	exploit := &ExploitSuggestion{Action: ActionFold, Amount: 0}

	for _, seed := range []int64{0, 1, 2, 3, 4} {
		first := NewAdvisor(Config{Seed: seed}, testLogger()).DecideBlended(sit(), exploit)
		second := NewAdvisor(Config{Seed: seed}, testLogger()).DecideBlended(sit(), exploit)
		require.Equal(t, first, second, "seed %d diverged", seed)
	}
}

func TestDecideBlendedNilExploitIsPlainDecision(t *testing.T) {
	t.Parallel()

	sit := func() *Situation {
		s := testSituation(Flop, Cutoff)
		s.HoleCards = []string{"Kh", "Kc"}
		s.CommunityCards = []string{"9s", "5d", "2c"}
		return s
	}

	plain := newTestAdvisor(11).Decide(sit())
	blended := newTestAdvisor(11).DecideBlended(sit(), nil)
	assert.Equal(t, plain, blended)
}

func TestDecideOverpairBetsForValue(t *testing.T) {
	t.Parallel()
	a := newTestAdvisor(5)

	sit := testSituation(Flop, Button)
	sit.HoleCards = []string{"Qs", "Qd"}
	sit.CommunityCards = []string{"Js", "9c", "2h"}

	result := a.Decide(sit)
	require.False(t, result.Fallback)
	assert.Equal(t, SizingValue, result.Sizing.Type)
	assert.Greater(t, result.Frequencies[ActionRaise], result.Frequencies[ActionFold])
}
