package poker

// Label returns the canonical starting-hand label for two hole cards:
// pairs as "AA", suited hands as "AKs", offsuit hands as "AKo", with
// the higher rank always first. The result is a pure function of the
// two cards and matches the keys used by range tables.
func Label(c1, c2 Card) string {
	ranks := "23456789TJQKA"

	r1 := c1.Rank()
	r2 := c2.Rank()
	if r1 > 12 || r2 > 12 {
		return ""
	}

	high, low := r1, r2
	if low > high {
		high, low = low, high
	}

	if high == low {
		return string(ranks[high]) + string(ranks[low])
	}

	suffix := "o"
	if c1.Suit() == c2.Suit() {
		suffix = "s"
	}
	return string(ranks[high]) + string(ranks[low]) + suffix
}

// LabelFromTokens parses two card tokens and returns their label.
// Unparseable tokens yield an empty label.
func LabelFromTokens(tok1, tok2 string) string {
	c1, err1 := ParseCard(tok1)
	c2, err2 := ParseCard(tok2)
	if err1 != nil || err2 != nil {
		return ""
	}
	return Label(c1, c2)
}
