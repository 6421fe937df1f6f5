package diferenco

// HunkKind classifies a ChangeRecord by which sides it touches, the
// UNCHANGED/OLD/NEW/CHANGED distinction spec.md §5 asks C6 to make.
// UNCHANGED itself is never produced by BuildScript (a run with nothing
// changed on either side is never turned into a record), but formatters
// that walk gaps between records report those spans as UNCHANGED.
type HunkKind int8

const (
	Unchanged HunkKind = iota
	Old               // pure deletion: lines removed from side 0, nothing added
	New               // pure insertion: lines added to side 1, nothing removed
	Changed           // replacement: both sides touched
)

// Kind classifies the record per HunkKind.
func (c *ChangeRecord) Kind() HunkKind {
	switch {
	case c.Deleted > 0 && c.Inserted > 0:
		return Changed
	case c.Deleted > 0:
		return Old
	case c.Inserted > 0:
		return New
	default:
		return Unchanged
	}
}

// applyIgnoreRules is C6: mark each record Ignore when every line it
// touches is dismissable under the active rules (-B blank lines, -I
// regexp). A record with either a deletion or an insertion surviving the
// predicate is never ignored, matching GNU diff's ignore_blank_lines and
// remove_noise passes: all affected lines must satisfy the predicate for
// the whole hunk to be ignorable, not just one side.
func applyIgnoreRules(s *Script, bufA *Buffer, linesA []Line, bufB *Buffer, linesB []Line, cfg *Config) {
	if s == nil || (!cfg.IgnoreBlankLines && cfg.IgnoreMatchingLines == nil) {
		return
	}
	for _, rec := range s.Records() {
		rec.Ignore = hunkIsIgnorable(rec, bufA, linesA, bufB, linesB, cfg)
	}
}

func hunkIsIgnorable(rec *ChangeRecord, bufA *Buffer, linesA []Line, bufB *Buffer, linesB []Line, cfg *Config) bool {
	for i := 0; i < rec.Deleted; i++ {
		if !lineIsIgnorable(bufA, linesA[rec.Line0+i], cfg) {
			return false
		}
	}
	for i := 0; i < rec.Inserted; i++ {
		if !lineIsIgnorable(bufB, linesB[rec.Line1+i], cfg) {
			return false
		}
	}
	return true
}

// MergeHunks groups a flat record chain into the hunks context and unified
// output actually render: consecutive records separated by at most
// 2*context unchanged lines share one hunk and its context window,
// spec.md §4.5's merge rule. The window shrinks to context (rather than
// 2*context) when the earlier record is ignorable, so an ignored hunk
// doesn't needlessly pull a real change into its block.
func MergeHunks(records []*ChangeRecord, context int) [][]*ChangeRecord {
	if len(records) == 0 {
		return nil
	}
	groups := [][]*ChangeRecord{{records[0]}}
	for _, rec := range records[1:] {
		group := groups[len(groups)-1]
		prev := group[len(group)-1]
		gap := rec.Line0 - (prev.Line0 + prev.Deleted)
		if gap1 := rec.Line1 - (prev.Line1 + prev.Inserted); gap1 < gap {
			gap = gap1
		}
		threshold := 2 * context
		if prev.Ignore {
			threshold = context
		}
		if gap <= threshold {
			groups[len(groups)-1] = append(group, rec)
		} else {
			groups = append(groups, []*ChangeRecord{rec})
		}
	}
	return groups
}

func lineIsIgnorable(b *Buffer, l Line, cfg *Config) bool {
	if cfg.IgnoreBlankLines && isBlankLine(b, l) {
		return true
	}
	if cfg.IgnoreMatchingLines != nil && cfg.IgnoreMatchingLines.MatchString(string(l.Bytes(b))) {
		return true
	}
	return false
}
