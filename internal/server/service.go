package server

import (
	"fmt"

	"github.com/pokerforge/gtoadvisor/gto"
)

// SituationFromRequest converts a wire request into an engine
// situation. Unknown action or position strings resolve to their
// conservative defaults rather than failing the request.
func SituationFromRequest(req *AdviseRequestData) (*gto.Situation, error) {
	if len(req.ValidActions) == 0 {
		return nil, fmt.Errorf("request carries no valid actions")
	}

	sit := &gto.Situation{
		Street:          gto.StreetFromString(req.Street),
		Position:        gto.PositionFromString(req.Position),
		HoleCards:       req.HoleCards,
		CommunityCards:  req.CommunityCards,
		PotSize:         req.PotSize,
		StackSize:       req.StackSize,
		CallAmount:      req.CallAmount,
		BigBlind:        req.BigBlind,
		ActiveOpponents: req.ActiveOpponents,
	}
	for _, oa := range req.OpponentActions {
		sit.OpponentActions = append(sit.OpponentActions, gto.OpponentAction{
			Actor:  oa.Actor,
			Action: gto.ActionFromString(oa.Action),
			Amount: oa.Amount,
		})
	}
	for _, va := range req.ValidActions {
		sit.ValidActions = append(sit.ValidActions, gto.ValidAction{
			Action:    gto.ActionFromString(va.Action),
			MinAmount: va.Min,
			MaxAmount: va.Max,
		})
	}
	return sit, nil
}

// ExploitFromRequest extracts the optional exploitative suggestion.
func ExploitFromRequest(req *AdviseRequestData) *gto.ExploitSuggestion {
	if req.ExploitAction == "" {
		return nil
	}
	return &gto.ExploitSuggestion{
		Action: gto.ActionFromString(req.ExploitAction),
		Amount: req.ExploitAmount,
	}
}

// DecisionToData converts an engine result into its wire form.
func DecisionToData(result gto.DecisionResult) DecisionData {
	frequencies := make(map[string]float64, len(result.Frequencies))
	for action, p := range result.Frequencies {
		frequencies[action.String()] = p
	}
	return DecisionData{
		Action:      result.Action.String(),
		Amount:      result.Amount,
		Confidence:  result.Confidence,
		Frequencies: frequencies,
		Sizing: SizingData{
			Optimal:     result.Sizing.Optimal,
			Min:         result.Sizing.Min,
			Max:         result.Sizing.Max,
			Type:        result.Sizing.Type.String(),
			Explanation: result.Sizing.Explanation,
		},
		Range: RangeData{
			HandLabel:     result.Range.HandLabel,
			InOpenRange:   result.Range.InOpenRange,
			InDefendRange: result.Range.InDefendRange,
			RangeStrength: result.Range.RangeStrength,
		},
		Reasoning: result.Reasoning,
		Fallback:  result.Fallback,
	}
}
