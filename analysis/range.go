// Package analysis provides starting-hand range modeling and scalar
// hand-strength evaluation.
package analysis

import (
	"fmt"
	"slices"
	"strings"
)

const rankChars = "23456789TJQKA"

// Range is a set of canonical starting-hand labels ("AA", "AKs",
// "T9o") with associated weights. Immutable after parsing.
type Range struct {
	labels map[string]float64
}

// NewRange creates a new empty range.
func NewRange() *Range {
	return &Range{labels: make(map[string]float64)}
}

// ParseRange creates a range from standard poker notation.
// Examples: "AA,KK", "AKs,AKo", "TT+", "A5s-A2s", "KTs+", "22-66"
func ParseRange(notation string) (*Range, error) {
	r := NewRange()

	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := r.addPart(part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}

	return r, nil
}

// MustParseRange parses notation and panics on error. For static tables.
func MustParseRange(notation string) *Range {
	r, err := ParseRange(notation)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Range) addPart(part string) error {
	if strings.Contains(part, "+") {
		return r.addPlusRange(part)
	}
	if strings.Contains(part, "-") {
		return r.addDashRange(part)
	}
	return r.addSingle(part, 1.0)
}

// addSingle adds one label, expanding a bare non-pair like "AK" into
// both the suited and offsuit labels.
func (r *Range) addSingle(notation string, weight float64) error {
	if len(notation) < 2 || len(notation) > 3 {
		return fmt.Errorf("invalid notation length: %s", notation)
	}

	rank1 := rankValue(notation[0])
	rank2 := rankValue(notation[1])
	if rank1 == 0 || rank2 == 0 {
		return fmt.Errorf("invalid rank in: %s", notation)
	}

	if rank1 == rank2 {
		if len(notation) == 3 {
			return fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", notation)
		}
		r.labels[makeLabel(rank1, rank2, "")] = weight
		return nil
	}

	if len(notation) == 2 {
		r.labels[makeLabel(rank1, rank2, "s")] = weight
		r.labels[makeLabel(rank1, rank2, "o")] = weight
		return nil
	}

	switch notation[2] {
	case 's', 'o':
		r.labels[makeLabel(rank1, rank2, string(notation[2]))] = weight
		return nil
	default:
		return fmt.Errorf("invalid modifier: %c", notation[2])
	}
}

// addPlusRange handles notations like "TT+" (pairs TT and higher) and
// "KTs+" (KTs through KQs).
func (r *Range) addPlusRange(notation string) error {
	base, ok := strings.CutSuffix(notation, "+")
	if !ok {
		return fmt.Errorf("misplaced +")
	}
	if len(base) < 2 || len(base) > 3 {
		return fmt.Errorf("invalid base notation: %s", base)
	}

	rank1 := rankValue(base[0])
	rank2 := rankValue(base[1])
	if rank1 == 0 || rank2 == 0 {
		return fmt.Errorf("invalid rank in: %s", base)
	}

	if rank1 == rank2 {
		for rank := rank1; rank <= 14; rank++ {
			r.labels[makeLabel(rank, rank, "")] = 1.0
		}
		return nil
	}

	suffixes, err := suffixesFor(base)
	if err != nil {
		return err
	}
	for rank := rank2; rank < rank1; rank++ {
		for _, sfx := range suffixes {
			r.labels[makeLabel(rank1, rank, sfx)] = 1.0
		}
	}
	return nil
}

// addDashRange handles notations like "22-66" and "A5s-A2s".
func (r *Range) addDashRange(notation string) error {
	start, end, ok := strings.Cut(notation, "-")
	if !ok || len(start) < 2 || len(end) < 2 {
		return fmt.Errorf("invalid dash range")
	}

	startRank1 := rankValue(start[0])
	startRank2 := rankValue(start[1])
	endRank1 := rankValue(end[0])
	endRank2 := rankValue(end[1])
	if startRank1 == 0 || startRank2 == 0 || endRank1 == 0 || endRank2 == 0 {
		return fmt.Errorf("invalid ranks in range")
	}

	// Pocket pair span like "22-66"
	if startRank1 == startRank2 && endRank1 == endRank2 {
		lower := min(startRank1, endRank1)
		upper := max(startRank1, endRank1)
		for rank := lower; rank <= upper; rank++ {
			r.labels[makeLabel(rank, rank, "")] = 1.0
		}
		return nil
	}

	// Same high card, kicker span like "A5s-A2s"
	if startRank1 == endRank1 {
		suffixes, err := suffixesFor(start)
		if err != nil {
			return err
		}
		lower := min(startRank2, endRank2)
		upper := max(startRank2, endRank2)
		for rank := lower; rank <= upper; rank++ {
			for _, sfx := range suffixes {
				r.labels[makeLabel(startRank1, rank, sfx)] = 1.0
			}
		}
		return nil
	}

	return fmt.Errorf("unsupported range format: %s", notation)
}

// Contains reports whether a hand label is in the range.
func (r *Range) Contains(label string) bool {
	_, ok := r.labels[label]
	return ok
}

// Weight returns the weight of a label in the range (0 when absent).
func (r *Range) Weight(label string) float64 {
	return r.labels[label]
}

// Size returns the number of hand labels in the range.
func (r *Range) Size() int {
	return len(r.labels)
}

// Labels returns all labels in the range, sorted for stable output.
func (r *Range) Labels() []string {
	labels := make([]string, 0, len(r.labels))
	for label := range r.labels {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

// suffixesFor returns the label suffixes a notation part expands to:
// explicit "s"/"o", or both when unmodified.
func suffixesFor(base string) ([]string, error) {
	if len(base) == 2 {
		return []string{"s", "o"}, nil
	}
	switch base[2] {
	case 's':
		return []string{"s"}, nil
	case 'o':
		return []string{"o"}, nil
	default:
		return nil, fmt.Errorf("invalid modifier: %c", base[2])
	}
}

// makeLabel builds a canonical label from 2-14 rank values, high first.
func makeLabel(rank1, rank2 int, suffix string) string {
	high, low := rank1, rank2
	if low > high {
		high, low = low, high
	}
	return string(rankChars[high-2]) + string(rankChars[low-2]) + suffix
}

// rankValue converts a rank character to its 2-14 value (0 if invalid).
func rankValue(c byte) int {
	idx := strings.IndexByte(rankChars, c)
	if idx < 0 {
		return 0
	}
	return idx + 2
}
