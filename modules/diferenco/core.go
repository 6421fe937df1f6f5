package diferenco

import "context"

// runAlgorithm dispatches to the selected core differ (C4) over the
// virtual (post-discard) equivalence-class sequences.
func runAlgorithm(ctx context.Context, a, b []int, cfg *Config) ([]Change, error) {
	switch cfg.Algorithm {
	case ONP:
		return OnpDiff(ctx, a, b)
	case Histogram:
		return HistogramDiff(ctx, a, b)
	case Patience:
		return PatienceChanges(ctx, a, b)
	case Minimal:
		minCfg := *cfg
		minCfg.Minimal = true
		return MyersDiff(ctx, a, b, &minCfg)
	default:
		return MyersDiff(ctx, a, b, cfg)
	}
}

// changedBitmaps is the C4 Output contract of spec.md §4.4: two boolean
// arrays, indexed by real (not virtual) line number within the trimmed
// middle region, recording which lines the edit script touches.
type changedBitmaps struct {
	changed  [2][]bool
	middleLen [2]int
}

// computeChangedBitmaps runs C3 (trim) + C4's discard pass + the selected
// algorithm, and projects the result back from the virtual, discard/trim
// -adjusted coordinate space the differ sees into real per-side line
// indices relative to the start of the trimmed middle region. It also
// returns the (untouched-by-discard) middle-region equivalence slices,
// which C5's boundary-shift pass needs to test whether sliding a run is
// valid.
func computeChangedBitmaps(ctx context.Context, equivsA, equivsB []int, cfg *Config) (changedBitmaps, Trim, []int, []int, error) {
	trim := TrimEnds(equivsA, equivsB, cfg.HorizonLines)

	middleA := equivsA[trim.PrefixEnd:trim.SuffixBegin[0]]
	middleB := equivsB[trim.PrefixEnd:trim.SuffixBegin[1]]

	forceMinimal := cfg.Minimal || cfg.Algorithm == Minimal
	keepA, keepB := discardConfusingLines(middleA, middleB, forceMinimal)

	virtualA := selectByIndex(middleA, keepA)
	virtualB := selectByIndex(middleB, keepB)

	raw, err := runAlgorithm(ctx, virtualA, virtualB, cfg)
	if err != nil {
		return changedBitmaps{}, trim, nil, nil, err
	}

	cb := changedBitmaps{middleLen: [2]int{len(middleA), len(middleB)}}
	cb.changed[0] = make([]bool, len(middleA))
	cb.changed[1] = make([]bool, len(middleB))
	for _, ch := range raw {
		for i := ch.P1; i < ch.P1+ch.Del; i++ {
			cb.changed[0][keepA[i]] = true
		}
		for i := ch.P2; i < ch.P2+ch.Ins; i++ {
			cb.changed[1][keepB[i]] = true
		}
	}
	return cb, trim, middleA, middleB, nil
}

func selectByIndex(v []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = v[j]
	}
	return out
}
