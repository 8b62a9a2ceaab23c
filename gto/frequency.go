package gto

import (
	"github.com/pokerforge/gtoadvisor/classification"
)

// Distribution maps actions to probabilities. A well-formed
// distribution sums to 1 within normalizeTolerance and only contains
// legal actions.
type Distribution map[Action]float64

const normalizeTolerance = 1e-3

// Profile bundles the coefficients that parameterize the policy. The
// same calculator serves every play style by swapping the bundle
// instead of duplicating threshold ladders per style.
type Profile struct {
	// AggressionMult scales all raise frequencies.
	AggressionMult float64
	// BluffRate scales the residual raise frequency of marginal and
	// weak hands.
	BluffRate float64
	// ThresholdOffset shifts the hand-strength brackets. Negative
	// values treat hands as stronger than they are.
	ThresholdOffset float64
}

// DefaultProfile returns the balanced coefficient bundle.
func DefaultProfile() Profile {
	return Profile{AggressionMult: 1.0, BluffRate: 1.0, ThresholdOffset: 0.0}
}

// strengthBand is one row of the hand-strength ladder: the base
// distribution applied to hands at or above the threshold.
type strengthBand struct {
	threshold float64
	raise     float64
	call      float64
	fold      float64
}

// Ordered strongest first. Traversed once per decision.
var strengthBands = []strengthBand{
	{0.80, 0.85, 0.15, 0.00},
	{0.60, 0.65, 0.35, 0.00},
	{0.40, 0.25, 0.55, 0.20},
	{0.25, 0.15, 0.35, 0.50},
	{0.00, 0.08, 0.12, 0.80},
}

// bluffBandCeiling marks the strength below which the raise frequency
// represents a bluff rather than a value raise.
const bluffBandCeiling = 0.40

// FrequencyCalculator converts a decision point into a normalized
// action-probability distribution.
type FrequencyCalculator struct {
	profile Profile
}

// NewFrequencyCalculator creates a calculator using the given profile.
func NewFrequencyCalculator(profile Profile) *FrequencyCalculator {
	return &FrequencyCalculator{profile: profile}
}

// Compute builds the action distribution for a situation from the base
// strength ladder and the multiplicative adjustments for board texture,
// position, opponent aggression and the big-blind discount. The result
// is restricted to the situation's legal actions and sums to 1.
func (c *FrequencyCalculator) Compute(sit *Situation, strength float64, texture classification.BoardTexture, aggression float64) Distribution {
	band := c.bandFor(strength)

	raise := band.raise * c.profile.AggressionMult
	if strength < bluffBandCeiling {
		raise *= c.profile.BluffRate
	}
	dist := Distribution{
		ActionFold:  band.fold,
		ActionCall:  band.call,
		ActionRaise: raise,
	}

	// Texture only matters once there is a board.
	if sit.Street != Preflop {
		switch texture {
		case classification.Wet:
			dist[ActionRaise] *= 0.8
			dist[ActionFold] *= 1.2
		case classification.Dry:
			dist[ActionRaise] *= 1.1
			dist[ActionFold] *= 0.9
		}
	}

	adv := sit.Position.Advantage()
	dist[ActionRaise] *= 0.8 + 0.4*adv
	dist[ActionFold] *= 1.2 - 0.4*adv

	if sit.FacingRaise() {
		switch {
		case aggression > 1.2:
			// A frequent raiser's range is wide, so light raises gain
			// value, but marginal hands still head for the exit.
			dist[ActionRaise] *= 1.1
			dist[ActionCall] *= 0.9
			if strength < 0.65 {
				dist[ActionFold] *= 1.15
			}
		case aggression < 0.8:
			dist[ActionRaise] *= 0.9
			dist[ActionCall] *= 1.1
		}
	}

	// The big blind already has chips committed, so it folds less and
	// defends more at equal strength.
	if sit.Position == BigBlind {
		dist[ActionFold] *= 0.85
		dist[ActionCall] *= 1.15
	}

	c.restrict(sit, dist)
	normalize(dist)
	return dist
}

// bandFor finds the ladder row for a strength value, shifted by the
// profile's threshold offset.
func (c *FrequencyCalculator) bandFor(strength float64) strengthBand {
	for _, band := range strengthBands {
		if strength >= band.threshold+c.profile.ThresholdOffset {
			return band
		}
	}
	return strengthBands[len(strengthBands)-1]
}

// restrict drops actions that are not legal in this situation. The
// deleted mass is redistributed proportionally by the following
// normalization pass.
func (c *FrequencyCalculator) restrict(sit *Situation, dist Distribution) {
	for action := range dist {
		if _, ok := sit.ValidAction(action); !ok {
			delete(dist, action)
		}
	}
	if !sit.RaiseAllowed() {
		delete(dist, ActionRaise)
	}
}

// normalize clips negatives and rescales so the distribution sums to 1.
// An all-zero distribution degrades to certain fold, or certain call
// when fold is somehow absent.
func normalize(dist Distribution) {
	var sum float64
	for action, p := range dist {
		if p < 0 {
			dist[action] = 0
			continue
		}
		sum += p
	}
	if sum <= 0 {
		if _, ok := dist[ActionFold]; ok {
			dist[ActionFold] = 1.0
			return
		}
		if _, ok := dist[ActionCall]; ok {
			dist[ActionCall] = 1.0
		}
		return
	}
	for action := range dist {
		dist[action] /= sum
	}
}

// sampleOrder fixes the traversal order for cumulative sampling so the
// same draw always selects the same action.
var sampleOrder = []Action{ActionFold, ActionCall, ActionRaise}

// SampleAction selects an action by cumulative-distribution sampling:
// walk the fixed action order accumulating probability until the total
// meets or exceeds the draw. Pure so tests can drive it with chosen values.
func SampleAction(dist Distribution, draw float64) Action {
	var cumulative float64
	last := ActionFold
	found := false
	for _, action := range sampleOrder {
		p, ok := dist[action]
		if !ok || p <= 0 {
			continue
		}
		last = action
		found = true
		cumulative += p
		if draw <= cumulative {
			return action
		}
	}
	// Rounding can leave the total a hair under the draw.
	if found {
		return last
	}
	return ActionFold
}
