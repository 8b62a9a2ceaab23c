package poker

import (
	"testing"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		c1, c2 string
		want   string
	}{
		{"Ah", "Ad", "AA"},
		{"Ah", "Kh", "AKs"},
		{"Ah", "Ks", "AKo"},
		{"Kh", "Ah", "AKs"},
		{"2c", "7d", "72o"},
		{"Th", "9h", "T9s"},
		{"2h", "2s", "22"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c1, err := ParseCard(tt.c1)
			if err != nil {
				t.Fatal(err)
			}
			c2, err := ParseCard(tt.c2)
			if err != nil {
				t.Fatal(err)
			}
			if got := Label(c1, c2); got != tt.want {
				t.Errorf("Label(%s, %s) = %q, want %q", tt.c1, tt.c2, got, tt.want)
			}
		})
	}
}

func TestLabelOrderIndependent(t *testing.T) {
	a, _ := ParseCard("Kd")
	b, _ := ParseCard("Ah")
	if Label(a, b) != Label(b, a) {
		t.Errorf("Label(Kd, Ah) = %q, Label(Ah, Kd) = %q", Label(a, b), Label(b, a))
	}
	if Label(a, b) != "AKo" {
		t.Errorf("Label(Kd, Ah) = %q, want AKo", Label(a, b))
	}
}

func TestLabelFromTokens(t *testing.T) {
	if got := LabelFromTokens("sA", "hK"); got != "AKo" {
		t.Errorf("LabelFromTokens(sA, hK) = %q, want AKo", got)
	}
	if got := LabelFromTokens("10h", "9h"); got != "T9s" {
		t.Errorf("LabelFromTokens(10h, 9h) = %q, want T9s", got)
	}
	if got := LabelFromTokens("??", "Ah"); got != "" {
		t.Errorf("LabelFromTokens with bad token = %q, want empty", got)
	}
}
