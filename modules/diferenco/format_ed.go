package diferenco

import (
	"fmt"
	"strings"
)

// FormatEd renders GNU diff's -e (ed script) output: hunks in reverse
// file order, each a line-range plus a/c/d command against side 0's
// numbering, so applying the commands top-to-bottom in ed never shifts
// a later hunk's line numbers out from under it.
func FormatEd(r *Result) (string, error) {
	records := nonIgnored(r.Script.Records())
	var b strings.Builder
	for i := len(records) - 1; i >= 0; i-- {
		if err := writeEdHunk(&b, r, records[i]); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// FormatForwardEd renders GNU diff's -f (forward ed script) output: the
// same per-hunk syntax as -e, but left in file order, for tools that
// apply the whole script in one pass against a fixed line numbering
// rather than feeding it to ed interactively.
func FormatForwardEd(r *Result) (string, error) {
	records := nonIgnored(r.Script.Records())
	var b strings.Builder
	for _, rec := range records {
		if err := writeEdHunk(&b, r, rec); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func nonIgnored(records []*ChangeRecord) []*ChangeRecord {
	out := make([]*ChangeRecord, 0, len(records))
	for _, rec := range records {
		if !rec.Ignore {
			out = append(out, rec)
		}
	}
	return out
}

// writeEdHunk emits one hunk's ed command, failing with
// ErrNoNewlineUnderEd when the hunk touches either file's final,
// newline-less line: an ed script has no notation for "this appended or
// deleted line isn't newline-terminated" (spec.md §4.7 item 3), so that
// edit can't be represented and is reported as fatal rather than
// silently emitting a script that would corrupt the reconstructed file.
func writeEdHunk(b *strings.Builder, r *Result, rec *ChangeRecord) error {
	if rec.Deleted > 0 && rec.Line0+rec.Deleted == len(r.LinesA) && r.LinesA[len(r.LinesA)-1].Incomplete {
		return ErrNoNewlineUnderEd
	}
	if rec.Inserted > 0 && rec.Line1+rec.Inserted == len(r.LinesB) && r.LinesB[len(r.LinesB)-1].Incomplete {
		return ErrNoNewlineUnderEd
	}

	a, bEnd := rangeBounds(rec.Line0, rec.Deleted)
	switch rec.Kind() {
	case Old:
		fmt.Fprintf(b, "%sd\n", edRange(a, bEnd))
	case New:
		fmt.Fprintf(b, "%sa\n", edRange(a, bEnd))
		writeEdBody(b, r, rec)
	default:
		fmt.Fprintf(b, "%sc\n", edRange(a, bEnd))
		writeEdBody(b, r, rec)
	}
	return nil
}

// edRange renders an ed address: "a,b" normally, "a" when the range is a
// single line, and the anchor line alone (b, the line before an
// insertion point) when it is empty.
func edRange(a, b int) string {
	switch {
	case a > b:
		return fmt.Sprintf("%d", b)
	case a == b:
		return fmt.Sprintf("%d", a)
	default:
		return fmt.Sprintf("%d,%d", a, b)
	}
}

func writeEdBody(b *strings.Builder, r *Result, rec *ChangeRecord) {
	for i := 0; i < rec.Inserted; i++ {
		b.WriteString(lineText(r.B, r.LinesB[rec.Line1+i], r.Cfg))
	}
	b.WriteString(".\n")
}
