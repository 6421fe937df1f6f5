package diferenco

import "context"

// patienceToChanges flattens a []Dfio into the position-based Change form
// the rest of the pipeline shares, the way PatienceDiff's caller otherwise
// would have to. Adjacent non-equal runs are coalesced the same way
// mergeAdjacentChanges does for Myers, since PatienceDiff can emit a
// Delete immediately followed by an Insert for what is really one
// replacement hunk.
func patienceToChanges[E comparable](ops []Dfio[E]) []Change {
	changes := make([]Change, 0, len(ops))
	var p1, p2 int
	for _, op := range ops {
		switch op.T {
		case Equal:
			p1 += len(op.E)
			p2 += len(op.E)
		case Delete:
			changes = append(changes, Change{P1: p1, P2: p2, Del: len(op.E)})
			p1 += len(op.E)
		case Insert:
			changes = append(changes, Change{P1: p1, P2: p2, Ins: len(op.E)})
			p2 += len(op.E)
		}
	}
	return mergeAdjacentChanges(changes)
}

// PatienceChanges runs PatienceDiff and converts its result to Changes,
// giving it the same ctx-aware signature as the other core differs
// (OnpDiff, HistogramDiff, MyersDiff).
func PatienceChanges[E comparable](ctx context.Context, a, b []E) ([]Change, error) {
	ops, err := PatienceDiff(ctx, a, b)
	if err != nil {
		return nil, err
	}
	return patienceToChanges(ops), nil
}
