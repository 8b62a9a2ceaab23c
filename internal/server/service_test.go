package server

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerforge/gtoadvisor/gto"
)

func adviseRequest() *AdviseRequestData {
	return &AdviseRequestData{
		Street:    "preflop",
		Position:  "BTN",
		HoleCards: []string{"As", "Ad"},
		PotSize:   15,
		StackSize: 1000,
		BigBlind:  10,
		OpponentActions: []OpponentActionData{
			{Actor: "villain", Action: "raise", Amount: 20},
		},
		ValidActions: []ValidActionData{
			{Action: "fold"},
			{Action: "call", Min: 20, Max: 20},
			{Action: "raise", Min: 40, Max: 1000},
		},
	}
}

func TestSituationFromRequest(t *testing.T) {
	t.Parallel()

	sit, err := SituationFromRequest(adviseRequest())
	require.NoError(t, err)

	assert.Equal(t, gto.Preflop, sit.Street)
	assert.Equal(t, gto.Button, sit.Position)
	assert.Equal(t, []string{"As", "Ad"}, sit.HoleCards)
	assert.True(t, sit.FacingRaise())
	assert.True(t, sit.RaiseAllowed())

	call, ok := sit.ValidAction(gto.ActionCall)
	require.True(t, ok)
	assert.Equal(t, 20, call.MinAmount)
}

func TestSituationFromRequestRequiresActions(t *testing.T) {
	t.Parallel()

	req := adviseRequest()
	req.ValidActions = nil
	_, err := SituationFromRequest(req)
	assert.Error(t, err)
}

func TestSituationFromRequestRaiseSentinel(t *testing.T) {
	t.Parallel()

	req := adviseRequest()
	req.ValidActions = []ValidActionData{
		{Action: "fold"},
		{Action: "call", Min: 20, Max: 20},
		{Action: "raise", Min: -1},
	}
	sit, err := SituationFromRequest(req)
	require.NoError(t, err)
	assert.False(t, sit.RaiseAllowed())
}

func TestExploitFromRequest(t *testing.T) {
	t.Parallel()

	req := adviseRequest()
	assert.Nil(t, ExploitFromRequest(req))

	req.ExploitAction = "raise"
	req.ExploitAmount = 60
	exploit := ExploitFromRequest(req)
	require.NotNil(t, exploit)
	assert.Equal(t, gto.ActionRaise, exploit.Action)
	assert.Equal(t, 60, exploit.Amount)
}

func TestDecisionToData(t *testing.T) {
	t.Parallel()

	logger := log.NewWithOptions(io.Discard, log.Options{})
	advisor := gto.NewAdvisor(gto.Config{Seed: 1}, logger)

	sit, err := SituationFromRequest(adviseRequest())
	require.NoError(t, err)

	result := advisor.Decide(sit)
	data := DecisionToData(result)

	assert.Equal(t, result.Action.String(), data.Action)
	assert.Equal(t, result.Amount, data.Amount)
	assert.Equal(t, result.Confidence, data.Confidence)
	assert.Equal(t, "AA", data.Range.HandLabel)
	assert.NotEmpty(t, data.Reasoning)

	var sum float64
	for _, p := range data.Frequencies {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-3)
}
