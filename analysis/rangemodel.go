package analysis

// Context names a strategic situation a range applies to.
type Context string

// Preflop contexts.
const (
	ContextOpen     Context = "open"
	ContextDefend   Context = "defend"
	Context3Bet     Context = "3bet"
	ContextCall3Bet Context = "call_3bet"
)

// Postflop contexts.
const (
	ContextValueBet  Context = "value_bet"
	ContextBluff     Context = "bluff"
	ContextCheckBack Context = "check_back"
	ContextCall      Context = "call"
	ContextFold      Context = "fold"
)

// fallbackPosition is the tightest configured seat. Unknown positions
// resolve here instead of failing the lookup.
const fallbackPosition = "BB"

// RangeModel holds the static per-position starting-hand ranges and
// the postflop context ranges. All tables are built once at
// construction and are read-only afterwards.
type RangeModel struct {
	preflop  map[string]map[Context]*Range
	postflop map[Context]*Range
	tiers    []strengthTier
}

// strengthTier maps a set of labels to a relative strength score.
type strengthTier struct {
	score  float64
	labels *Range
}

// NewRangeModel builds the default range tables.
func NewRangeModel() *RangeModel {
	m := &RangeModel{
		preflop:  make(map[string]map[Context]*Range),
		postflop: make(map[Context]*Range),
	}

	addRange := func(position string, ctx Context, notation string) {
		ranges, ok := m.preflop[position]
		if !ok {
			ranges = make(map[Context]*Range)
			m.preflop[position] = ranges
		}
		ranges[ctx] = MustParseRange(notation)
	}

	// Opening ranges widen from early position to the button.
	addRange("UTG", ContextOpen, "22+,A5s+,AQo+,KTs+,KQo,QTs+,JTs,T9s,98s,87s,76s,65s,54s")
	addRange("MP", ContextOpen, "22+,A5s+,AJo+,K9s+,KQo,Q9s+,QJo,J9s+,T8s+,97s+,86s+,75s+,64s+,54s")
	addRange("HJ", ContextOpen, "22+,A5s+,ATo+,K9s+,KTo+,Q9s+,QTo+,J8s+,JTo,T7s+,96s+,85s+,74s+,63s+,53s+")
	addRange("CO", ContextOpen, "22+,A5s+,ATo+,K9s+,KTo+,Q9s+,QTo+,J8s+,JTo,T7s+,96s+,85s+,74s+,63s+,52s+,42s+,32s")
	addRange("BTN", ContextOpen, "22+,A2s+,A2o+,K2s+,K9o+,Q2s+,Q9o+,J2s+,J9o+,T2s+,T9o,98s,87s,76s,65s,54s,43s,32s")
	addRange("SB", ContextOpen, "22+,A5s+,ATo+,K9s+,KTo+,Q9s+,QTo+,J8s+,JTo,T7s+,97s+,86s+,75s+,64s+,53s+")

	// The big blind defends instead of opening.
	addRange("BB", ContextDefend, "22+,A2s+,ATo+,K2s+,KTo+,Q2s+,QTo+,J2s+,JTo,T2s+,92s+,82s+,72s+,62s+,52s+,42s+,32s")

	// Three-bet ranges stay value-heavy everywhere.
	addRange("UTG", Context3Bet, "JJ+,AQs+,AKo")
	addRange("MP", Context3Bet, "JJ+,AQs+,AKo")
	addRange("HJ", Context3Bet, "TT+,AJs+,AKo")
	addRange("CO", Context3Bet, "TT+,AJs+,AKo,KQs")
	addRange("BTN", Context3Bet, "TT+,AJs+,AKo,KQs")
	addRange("SB", Context3Bet, "TT+,AJs+,AKo,KQs")
	addRange("BB", Context3Bet, "TT+,AJs+,AKo,KQs")

	call3Bet := "22+,A5s+,AQo+,K9s+,Q9s+,J9s+,T9s,98s,87s,76s,65s,54s"
	for _, position := range []string{"UTG", "MP", "HJ", "CO", "BTN", "SB", "BB"} {
		addRange(position, ContextCall3Bet, call3Bet)
	}

	m.postflop[ContextValueBet] = MustParseRange("22+,ATs+,ATo+")
	m.postflop[ContextBluff] = MustParseRange("A5s-A2s,K9s,Q9s,J9s,T9s,98s,87s,76s,65s,54s")
	m.postflop[ContextCheckBack] = MustParseRange("22-QQ,AQs-A5s,AQo-ATo,KQs-K5s,KQo-KTo")
	m.postflop[ContextCall] = MustParseRange("22+,A5s+,ATo+,K5s+,KTo+,Q5s+,QTo+,J6s+,JTo,T6s+,95s+,84s+,74s+,63s+,52s+,42s+,32s")
	m.postflop[ContextFold] = MustParseRange("72,82,92,T2,J2,Q2,K2o")

	m.tiers = []strengthTier{
		{1.0, MustParseRange("JJ+,AK")},
		{0.9, MustParseRange("88-TT,AQ,AJs,KQs")},
		{0.8, MustParseRange("55-77,ATs,KJs,QJs")},
		{0.7, MustParseRange("22-44,A8s+,KTs,QTs")},
	}

	return m
}

// Lookup returns the range for (position, street, context). A position
// with no table for the context, or an unknown position, falls back to
// the tightest configured range rather than failing.
func (m *RangeModel) Lookup(position, street string, ctx Context) *Range {
	if street != "preflop" {
		if r, ok := m.postflop[ctx]; ok {
			return r
		}
		return m.postflop[ContextCheckBack]
	}

	ranges, ok := m.preflop[position]
	if !ok {
		ranges = m.preflop[fallbackPosition]
	}
	if r, ok := ranges[ctx]; ok {
		return r
	}

	// Open and defend describe the same first-in decision from seats
	// that only carry one of the two tables.
	switch ctx {
	case ContextOpen:
		if r, ok := ranges[ContextDefend]; ok {
			return r
		}
	case ContextDefend:
		if r, ok := ranges[ContextOpen]; ok {
			return r
		}
	}

	return m.preflop[fallbackPosition][ContextDefend]
}

// InRange reports whether a hand label belongs to the range for
// (position, street, context). Deterministic for identical inputs.
func (m *RangeModel) InRange(label, position, street string, ctx Context) bool {
	if label == "" {
		return false
	}
	return m.Lookup(position, street, ctx).Contains(label)
}

// Strength returns the relative strength of a label within a range:
// 1.0 for the strongest tier, stepping down to 0.5 for playable hands
// outside the named tiers, and 0.0 for labels not in the range at all.
func (m *RangeModel) Strength(label string, r *Range) float64 {
	if r == nil || !r.Contains(label) {
		return 0.0
	}
	for _, tier := range m.tiers {
		if tier.labels.Contains(label) {
			return tier.score
		}
	}
	return 0.5
}
