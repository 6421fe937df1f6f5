package diferenco

import "github.com/emirpasic/gods/lists/doublylinkedlist"

// ChangeRecord is one edit-script entry, matching spec.md §3's
// { line0, deleted, line1, inserted, ignore, link } record: starting at
// real line Line0 of side 0, Deleted lines are removed and replaced by
// Inserted lines from side 1 beginning at Line1. Ignore is set later by
// C6 when every affected line is ignorable. Line numbers are 0-based and
// already translated into the real (non-virtual, non-trimmed) coordinate
// space of each side.
type ChangeRecord struct {
	Line0, Deleted  int
	Line1, Inserted int
	Ignore          bool
}

// Script is the post-processed, forward-ordered chain of ChangeRecords
// that every formatter renders from. It is backed by a doubly linked
// list (github.com/emirpasic/gods) rather than a hand-rolled `next`
// pointer, the direct replacement for struct change's intrusive link
// field.
type Script struct {
	list *doublylinkedlist.List
}

// Records returns the chain as a plain slice, in forward order.
func (s *Script) Records() []*ChangeRecord {
	if s == nil || s.list == nil {
		return nil
	}
	values := s.list.Values()
	out := make([]*ChangeRecord, len(values))
	for i, v := range values {
		out[i] = v.(*ChangeRecord)
	}
	return out
}

// Empty reports whether the script contains no changes at all.
func (s *Script) Empty() bool { return s == nil || s.list == nil || s.list.Empty() }

// blankLookup tells the boundary-shift pass which real lines, on a given
// side, are blank (whitespace-only under the active equivalence rule).
type blankLookup func(side, realIndex int) bool

// BuildScript implements the rest of C5: shift each run's boundary toward
// a natural line break, then scan the (possibly shifted) bitmaps in
// lockstep to emit one ChangeRecord per maximal pair of runs. Merging
// hunks that end up close enough to share context is applied later by
// formatters, which know the active context width; this stage only
// builds the unmerged, boundary-shifted chain.
func BuildScript(cb changedBitmaps, trim Trim, middleA, middleB []int, isBlank blankLookup) *Script {
	changed0 := append([]bool(nil), cb.changed[0]...)
	changed1 := append([]bool(nil), cb.changed[1]...)
	shiftBoundaries(changed0, middleA, 0, isBlank)
	shiftBoundaries(changed1, middleB, 1, isBlank)

	list := doublylinkedlist.New()
	i, j := 0, 0
	na, nb := len(changed0), len(changed1)
	for i < na || j < nb {
		c0 := i < na && changed0[i]
		c1 := j < nb && changed1[j]
		if !c0 && !c1 {
			// Horizon slack can leave unchanged lines at the tail of one
			// side's middle region past the point the other side runs out;
			// advance whichever side still has one left.
			if i < na {
				i++
			}
			if j < nb {
				j++
			}
			continue
		}
		// Consume the run of changed lines on each side; the two runs
		// together form one change record.
		start0, start1 := i, j
		for i < na && changed0[i] {
			i++
		}
		for j < nb && changed1[j] {
			j++
		}
		list.Add(&ChangeRecord{
			Line0:    trim.PrefixEnd + start0,
			Deleted:  i - start0,
			Line1:    trim.PrefixEnd + start1,
			Inserted: j - start1,
		})
	}
	return &Script{list: list}
}

// shiftBoundaries slides each run of changed[side] toward an adjacent
// position that is equally valid (the line leaving the run equals the
// line entering it, so the edit script still describes the same net
// change), preferring a position that ends the run on a blank line, and
// otherwise preferring the later (higher-index) position — the order
// spec.md §4.5 gives. It does not change how many lines are marked
// changed, only where the run's boundary sits.
func shiftBoundaries(changed []bool, equivs []int, side int, isBlank blankLookup) {
	n := len(changed)
	i := 0
	for i < n {
		if !changed[i] {
			i++
			continue
		}
		start := i
		for i < n && changed[i] {
			i++
		}
		end := i // [start, end) is one run

		for end < n && equivs[start] == equivs[end] {
			// Shifting one position later keeps the script equivalent;
			// take it whenever it lands the run's new end on a blank
			// line, and otherwise take it anyway (rule 2: prefer later).
			changed[start] = false
			changed[end] = true
			start++
			end++
			if isBlank != nil && isBlank(side, end-1) {
				break
			}
		}
	}
}
