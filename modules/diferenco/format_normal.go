package diferenco

import (
	"fmt"
	"os"
	"strings"
)

// FormatNormal renders the classic `diff` output: one "aLd/cN/dN" header
// per (non-ignored) change record, "< " lines from side 0, "---" for a
// replacement, "> " lines from side 1.
func FormatNormal(r *Result) (string, error) {
	var b strings.Builder
	enabled := colorEnabled(r.Cfg, os.Stdout)
	pal := resolvePalette(r.Cfg)
	for _, rec := range r.Script.Records() {
		if rec.Ignore {
			continue
		}
		writeNormalHunk(&b, r, rec, enabled, pal)
	}
	return b.String(), nil
}

func writeNormalHunk(b *strings.Builder, r *Result, rec *ChangeRecord, color bool, pal palette) {
	op := normalOp(rec)
	fmt.Fprintf(b, "%s%c%s\n", rangeString(rec.Line0, rec.Deleted), op, rangeStringSide1(rec))
	for i := 0; i < rec.Deleted; i++ {
		line := r.LinesA[rec.Line0+i]
		writeMarked(b, "< ", lineText(r.A, line, r.Cfg), line.Incomplete, color, pal.old, pal.reset)
	}
	if rec.Deleted > 0 && rec.Inserted > 0 {
		b.WriteString("---\n")
	}
	for i := 0; i < rec.Inserted; i++ {
		line := r.LinesB[rec.Line1+i]
		writeMarked(b, "> ", lineText(r.B, line, r.Cfg), line.Incomplete, color, pal.new, pal.reset)
	}
}

func rangeStringSide1(rec *ChangeRecord) string { return rangeString(rec.Line1, rec.Inserted) }

func normalOp(rec *ChangeRecord) byte {
	switch rec.Kind() {
	case Old:
		return 'd'
	case New:
		return 'a'
	default:
		return 'c'
	}
}

func writeMarked(b *strings.Builder, marker, text string, incomplete bool, color bool, code, reset string) {
	b.WriteString(colorize(color, code, reset, marker+text))
	if incomplete {
		b.WriteString("\\ No newline at end of file\n")
	}
}

// lineText renders one input line's text with the output-side options
// (tab expansion) applied; it never re-applies the comparison-time
// whitespace/case normalization, which only governs equivalence.
func lineText(buf *Buffer, l Line, cfg *Config) string {
	s := string(l.Bytes(buf))
	s = strings.TrimSuffix(s, "\n")
	if cfg.ExpandTabs {
		s = expandOutputTabs(s, cfg.tabSize())
	}
	return s + "\n"
}
