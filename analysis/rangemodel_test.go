package analysis

import (
	"testing"
)

func TestRangeModelOpenRanges(t *testing.T) {
	m := NewRangeModel()

	tests := []struct {
		label    string
		position string
		want     bool
	}{
		{"AA", "UTG", true},
		{"AKs", "UTG", true},
		{"72o", "UTG", false},
		{"T7s", "UTG", false},
		{"T7s", "CO", true},
		{"72o", "BTN", false},
		{"T9o", "BTN", true},
		{"A2o", "BTN", true},
		{"A2o", "SB", false},
	}

	for _, tt := range tests {
		got := m.InRange(tt.label, tt.position, "preflop", ContextOpen)
		if got != tt.want {
			t.Errorf("InRange(%s, %s, open) = %v, want %v", tt.label, tt.position, got, tt.want)
		}
	}
}

func TestRangeModelWidensByPosition(t *testing.T) {
	m := NewRangeModel()

	utg := m.Lookup("UTG", "preflop", ContextOpen)
	co := m.Lookup("CO", "preflop", ContextOpen)
	btn := m.Lookup("BTN", "preflop", ContextOpen)

	if utg.Size() >= co.Size() || co.Size() >= btn.Size() {
		t.Errorf("open range sizes should widen: UTG %d, CO %d, BTN %d", utg.Size(), co.Size(), btn.Size())
	}
}

func TestRangeModelThreeBet(t *testing.T) {
	m := NewRangeModel()

	if !m.InRange("QQ", "UTG", "preflop", Context3Bet) {
		t.Error("QQ should be in UTG 3bet range")
	}
	if m.InRange("TT", "UTG", "preflop", Context3Bet) {
		t.Error("TT should not be in UTG 3bet range")
	}
	if !m.InRange("TT", "BTN", "preflop", Context3Bet) {
		t.Error("TT should be in BTN 3bet range")
	}
}

func TestRangeModelBigBlindDefend(t *testing.T) {
	m := NewRangeModel()

	if !m.InRange("72s", "BB", "preflop", ContextDefend) {
		t.Error("72s should be in BB defend range")
	}
	if m.InRange("72o", "BB", "preflop", ContextDefend) {
		t.Error("72o should not be in BB defend range")
	}

	// The BB has no open table; asking for it resolves to defend.
	if m.Lookup("BB", "preflop", ContextOpen) != m.Lookup("BB", "preflop", ContextDefend) {
		t.Error("BB open should fall back to the defend range")
	}
}

func TestRangeModelUnknownPositionFallsBack(t *testing.T) {
	m := NewRangeModel()

	r := m.Lookup("straddle", "preflop", ContextDefend)
	if r == nil {
		t.Fatal("unknown position lookup returned nil")
	}
	if r != m.Lookup("BB", "preflop", ContextDefend) {
		t.Error("unknown position should resolve to the BB table")
	}
}

func TestRangeModelDeterministic(t *testing.T) {
	m := NewRangeModel()
	for i := 0; i < 3; i++ {
		if !m.InRange("AJs", "CO", "preflop", ContextOpen) {
			t.Fatal("repeated lookups should be stable")
		}
	}
}

func TestRangeModelPostflop(t *testing.T) {
	m := NewRangeModel()

	if !m.InRange("AA", "BTN", "flop", ContextValueBet) {
		t.Error("AA should be in the value bet range")
	}
	if !m.InRange("A5s", "BTN", "flop", ContextBluff) {
		t.Error("A5s should be in the bluff range")
	}
	if m.InRange("AA", "BTN", "flop", ContextBluff) {
		t.Error("AA should not be in the bluff range")
	}
}

func TestRangeStrengthTiers(t *testing.T) {
	m := NewRangeModel()
	open := m.Lookup("BTN", "preflop", ContextOpen)

	tests := []struct {
		label string
		want  float64
	}{
		{"AA", 1.0},
		{"AKo", 1.0},
		{"TT", 0.9},
		{"AQs", 0.9},
		{"77", 0.8},
		{"22", 0.7},
		{"T9s", 0.5},
	}

	for _, tt := range tests {
		if got := m.Strength(tt.label, open); got != tt.want {
			t.Errorf("Strength(%s) = %f, want %f", tt.label, got, tt.want)
		}
	}

	if got := m.Strength("72o", open); got != 0.0 {
		t.Errorf("Strength(out of range) = %f, want 0.0", got)
	}
}
