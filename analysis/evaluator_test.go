package analysis

import (
	"testing"

	"github.com/pokerforge/gtoadvisor/internal/randutil"
	"github.com/pokerforge/gtoadvisor/poker"
)

func mustHand(t *testing.T, tokens ...string) poker.Hand {
	t.Helper()
	h, err := poker.ParseHand(tokens...)
	if err != nil {
		t.Fatalf("ParseHand(%v): %v", tokens, err)
	}
	return h
}

func TestEvaluateBounds(t *testing.T) {
	// Every dealt two-card hand scores inside [0,1], preflop and on a board.
	rng := randutil.New(42)
	for i := 0; i < 500; i++ {
		deck := poker.NewDeck(rng)
		hole := poker.NewHand(deck.Deal(2)...)
		board := poker.NewHand(deck.Deal(5)...)

		if s := Evaluate(hole, 0); s < 0 || s > 1 {
			t.Fatalf("preflop Evaluate(%v) = %f, out of [0,1]", hole, s)
		}
		if s := Evaluate(hole, board); s < 0 || s > 1 {
			t.Fatalf("postflop Evaluate(%v, %v) = %f, out of [0,1]", hole, board, s)
		}
	}
}

func TestPairStrengthMonotonic(t *testing.T) {
	ranks := "23456789TJQKA"
	prev := 0.0
	for i := 0; i < len(ranks); i++ {
		hole := mustHand(t, string(ranks[i])+"h", string(ranks[i])+"s")
		s := Evaluate(hole, 0)
		if s <= prev {
			t.Errorf("pair %c%c strength %f not above previous %f", ranks[i], ranks[i], s, prev)
		}
		prev = s
	}
	if prev != 0.95 {
		t.Errorf("AA strength = %f, want 0.95", prev)
	}
}

func TestPreflopClamps(t *testing.T) {
	worst := Evaluate(mustHand(t, "7h", "2s"), 0)
	if worst != 0.20 {
		t.Errorf("72o strength = %f, want floor 0.20", worst)
	}

	best := Evaluate(mustHand(t, "Ah", "Kh"), 0)
	if best < 0.75 || best > 0.95 {
		t.Errorf("AKs strength = %f, want premium score within clamps", best)
	}
}

func TestPreflopWorstHand(t *testing.T) {
	ranks := "23456789TJQKA"
	worst := Evaluate(mustHand(t, "7h", "2s"), 0)
	for hi := 1; hi < len(ranks); hi++ {
		for lo := 0; lo < hi; lo++ {
			for _, suits := range [][2]string{{"h", "s"}, {"h", "h"}} {
				hole := mustHand(t, string(ranks[hi])+suits[0], string(ranks[lo])+suits[1])
				s := Evaluate(hole, 0)
				if s < worst {
					t.Errorf("%c%c%s strength %f below 72o's %f", ranks[hi], ranks[lo], suits[1], s, worst)
				}
				if s < 0.20 {
					t.Errorf("%c%c%s strength %f below floor 0.20", ranks[hi], ranks[lo], suits[1], s)
				}
			}
		}
	}
}

func TestPreflopBonuses(t *testing.T) {
	suited := Evaluate(mustHand(t, "Jh", "Th"), 0)
	offsuit := Evaluate(mustHand(t, "Jh", "Td"), 0)
	if suited <= offsuit {
		t.Errorf("JTs (%f) should outrank JTo (%f)", suited, offsuit)
	}

	connected := Evaluate(mustHand(t, "9h", "8d"), 0)
	gapped := Evaluate(mustHand(t, "9h", "4d"), 0)
	if connected <= gapped {
		t.Errorf("98o (%f) should outrank 94o (%f)", connected, gapped)
	}
}

func TestPostflopBandOrdering(t *testing.T) {
	tests := []struct {
		name  string
		hole  []string
		board []string
	}{
		{"high card", []string{"Ah", "7d"}, []string{"Ks", "9c", "2h"}},
		{"one pair", []string{"Ah", "7d"}, []string{"As", "9c", "2h"}},
		{"two pair", []string{"Ah", "9d"}, []string{"As", "9c", "2h"}},
		{"trips", []string{"9h", "9d"}, []string{"9s", "Kc", "2h"}},
		{"straight", []string{"8h", "7d"}, []string{"6s", "5c", "4h"}},
		{"flush", []string{"Ah", "7h"}, []string{"Kh", "9h", "2h"}},
		{"full house", []string{"9h", "9d"}, []string{"9s", "Kc", "Kh"}},
		{"quads", []string{"9h", "9d"}, []string{"9s", "9c", "Kh"}},
		{"straight flush", []string{"8h", "7h"}, []string{"6h", "5h", "4h"}},
	}

	prev := -1.0
	for _, tt := range tests {
		s := Evaluate(mustHand(t, tt.hole...), mustHand(t, tt.board...))
		if s <= prev {
			t.Errorf("%s strength %f not above previous band %f", tt.name, s, prev)
		}
		prev = s
	}
}

func TestOverpairBand(t *testing.T) {
	overpair := Evaluate(mustHand(t, "Qh", "Qd"), mustHand(t, "Js", "9c", "2h"))
	if overpair < 0.75 || overpair > 0.85 {
		t.Errorf("QQ overpair strength = %f, want within [0.75,0.85]", overpair)
	}

	boardPair := Evaluate(mustHand(t, "Jh", "7d"), mustHand(t, "Js", "9c", "2h"))
	if overpair <= boardPair {
		t.Errorf("overpair (%f) should outrank board-matched pair (%f)", overpair, boardPair)
	}

	// Underpair to the board stays in the generic pair band.
	underpair := Evaluate(mustHand(t, "5h", "5d"), mustHand(t, "Js", "9c", "2h"))
	if underpair != 0.30 {
		t.Errorf("55 underpair strength = %f, want 0.30", underpair)
	}
}

func TestEvaluateMalformed(t *testing.T) {
	if s := Evaluate(0, 0); s != 0.0 {
		t.Errorf("empty hole strength = %f, want 0.0", s)
	}
	if s := EvaluateTokens([]string{"xx", "Ah"}, nil); s != 0.0 {
		t.Errorf("malformed token strength = %f, want 0.0", s)
	}
	if s := EvaluateTokens([]string{"Ah"}, nil); s != 0.0 {
		t.Errorf("single hole card strength = %f, want 0.0", s)
	}
}

func TestEvaluateTokensOrderTolerant(t *testing.T) {
	a := EvaluateTokens([]string{"Ah", "Kh"}, nil)
	b := EvaluateTokens([]string{"hA", "hK"}, nil)
	if a != b {
		t.Errorf("rank-first (%f) and suit-first (%f) tokens should score identically", a, b)
	}
}
