package diferenco

import (
	"fmt"
	"strings"
)

// FormatSdiffAssist renders the minimal machine-readable stream an
// external side-by-side driver needs to lay out columns and know which
// spans require interactive resolution. Unlike the other formats, GNU
// diff does not document this protocol for outside consumption (sdiff
// is its own C program sharing diff's internals directly), so this is a
// from-scratch contract rather than a byte-exact reproduction: one line
// per hunk, "<kind> <a-range> <b-range>", kind one of c/a/d, ranges
// 1-based "start,end" (or a single number when the range is one line,
// "-" when a side contributes nothing). sdiffdrv.ParseAssistStream is the
// reference consumer.
func FormatSdiffAssist(r *Result) (string, error) {
	var b strings.Builder
	for _, rec := range r.Script.Records() {
		if rec.Ignore {
			continue
		}
		kind := byte('c')
		switch rec.Kind() {
		case Old:
			kind = 'd'
		case New:
			kind = 'a'
		}
		fmt.Fprintf(&b, "%c %s %s\n", kind, sdiffSide(rec.Line0, rec.Deleted), sdiffSide(rec.Line1, rec.Inserted))
	}
	return b.String(), nil
}

func sdiffSide(start0, count int) string {
	if count == 0 {
		return "-"
	}
	a, b := rangeBounds(start0, count)
	if a == b {
		return fmt.Sprintf("%d", a)
	}
	return fmt.Sprintf("%d,%d", a, b)
}

// sdiffGutterWidthMinimum and sdiffDefaultWidth mirror diff.c's own
// GUTTER_WIDTH_MINIMUM (3) and the "if (!width) width = 130" default
// sdiff's column layout falls back to.
const (
	sdiffGutterWidthMinimum = 3
	sdiffDefaultWidth       = 130
)

// sdiffColumnWidths replicates diff.c's derivation of sdiff's half-line
// width and second-column offset: maximize the half-line width first,
// then the gutter width, subject to both halves plus gutter fitting in
// width print columns, and — when tabs are not expanded — the halves
// plus gutter landing on a tab stop so the right column's tabs still
// line up.
func sdiffColumnWidths(width, tabSize int, expandTabs bool) (halfWidth, column2Offset int) {
	if width <= 0 {
		width = sdiffDefaultWidth
	}
	t := tabSize
	if expandTabs {
		t = 1
	}
	if t <= 0 {
		t = 8
	}
	tPlusG := t + sdiffGutterWidthMinimum
	unalignedOff := (width >> 1) + (tPlusG >> 1) + (width & tPlusG & 1)
	off := unalignedOff - unalignedOff%t
	halfWidth = off - sdiffGutterWidthMinimum
	if rem := width - off; rem < halfWidth {
		halfWidth = rem
	}
	if halfWidth < 0 {
		halfWidth = 0
	}
	if halfWidth != 0 {
		column2Offset = off
	} else {
		column2Offset = width
	}
	return halfWidth, column2Offset
}

// FormatSdiffColumns renders sdiff's actual two-column side-by-side text,
// as opposed to FormatSdiffAssist's machine-readable hunk stream: common
// lines repeated in both columns, changed lines paired across a "|"
// gutter, and lines contributed by only one side marked "<" or ">" — the
// way sdiff's own column printer does. Columns are sized and padded by
// display width (github.com/rivo/uniseg's grapheme-cluster count) rather
// than byte length, so multibyte lines still line up.
func FormatSdiffColumns(r *Result, width int) (string, error) {
	half, _ := sdiffColumnWidths(width, r.Cfg.tabSize(), r.Cfg.ExpandTabs)
	var b strings.Builder
	i := 0
	for _, rec := range r.Script.Records() {
		writeSdiffCommon(&b, r, half, r.LinesA[i:rec.Line0])
		if rec.Ignore {
			writeSdiffCommon(&b, r, half, r.LinesA[rec.Line0:rec.Line0+rec.Deleted])
		} else {
			writeSdiffChanged(&b, r, half, rec)
		}
		i = rec.Line0 + rec.Deleted
	}
	writeSdiffCommon(&b, r, half, r.LinesA[i:])
	return b.String(), nil
}

func writeSdiffCommon(b *strings.Builder, r *Result, half int, lines []Line) {
	for _, l := range lines {
		text := strings.TrimSuffix(lineText(r.A, l, r.Cfg), "\n")
		fmt.Fprintf(b, "%s   %s\n", sdiffCell(text, half), text)
	}
}

func writeSdiffChanged(b *strings.Builder, r *Result, half int, rec *ChangeRecord) {
	n := rec.Deleted
	if rec.Inserted > n {
		n = rec.Inserted
	}
	for k := 0; k < n; k++ {
		var left, right string
		haveLeft := k < rec.Deleted
		haveRight := k < rec.Inserted
		if haveLeft {
			left = strings.TrimSuffix(lineText(r.A, r.LinesA[rec.Line0+k], r.Cfg), "\n")
		}
		if haveRight {
			right = strings.TrimSuffix(lineText(r.B, r.LinesB[rec.Line1+k], r.Cfg), "\n")
		}
		gutter := byte('|')
		switch {
		case haveLeft && !haveRight:
			gutter = '<'
		case !haveLeft && haveRight:
			gutter = '>'
		}
		fmt.Fprintf(b, "%s %c %s\n", sdiffCell(left, half), gutter, right)
	}
}

// sdiffCell pads or clips text to exactly width display graphemes, the
// way sdiff's column printer lines up the left column before the gutter.
func sdiffCell(text string, width int) string {
	raw := []byte(text)
	if graphemeCount(raw) > width {
		raw = truncateToWidth(raw, width)
	}
	pad := width - graphemeCount(raw)
	if pad < 0 {
		pad = 0
	}
	return string(raw) + strings.Repeat(" ", pad)
}
