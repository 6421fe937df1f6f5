package diferenco

import (
	"fmt"
	"os"
	"strings"
)

// hunkWindow is a merged group of change records plus the context lines
// padded around it, in the coordinate space both context and unified
// output share.
type hunkWindow struct {
	records      []*ChangeRecord
	startA, endA int // [startA, endA) 0-based, side 0
	startB, endB int // [startB, endB) 0-based, side 1
}

// buildWindows merges records (C5/C6's MergeHunks) and pads each group
// with up to `context` unchanged lines on either side, clamped to the
// buffer bounds.
func buildWindows(r *Result, context int) []hunkWindow {
	groups := MergeHunks(r.Script.Records(), context)
	windows := make([]hunkWindow, 0, len(groups))
	for _, g := range groups {
		if allIgnored(g) {
			continue
		}
		first, last := g[0], g[len(g)-1]
		startA := max(0, first.Line0-context)
		endA := min(len(r.LinesA), last.Line0+last.Deleted+context)
		startB := max(0, first.Line1-context)
		endB := min(len(r.LinesB), last.Line1+last.Inserted+context)
		windows = append(windows, hunkWindow{records: g, startA: startA, endA: endA, startB: startB, endB: endB})
	}
	return windows
}

func allIgnored(g []*ChangeRecord) bool {
	for _, rec := range g {
		if !rec.Ignore {
			return false
		}
	}
	return true
}

// FormatContext renders GNU diff's -c output.
func FormatContext(r *Result) (string, error) {
	context := r.Cfg.context()
	windows := buildWindows(r, context)
	if len(windows) == 0 {
		return "", nil
	}
	var b strings.Builder
	color := colorEnabled(r.Cfg, os.Stdout)
	pal := resolvePalette(r.Cfg)

	writeContextBanner(&b, r, color, pal)

	for _, w := range windows {
		fmt.Fprintf(&b, "%s\n", colorize(color, pal.header, pal.reset, "***************"))
		fmt.Fprintf(&b, "*** %s ****\n", rangeString(w.startA, w.endA-w.startA))
		writeContextSide(&b, r, w, 0, color, pal)
		fmt.Fprintf(&b, "--- %s ----\n", rangeString(w.startB, w.endB-w.startB))
		writeContextSide(&b, r, w, 1, color, pal)
	}
	return b.String(), nil
}

func writeContextBanner(b *strings.Builder, r *Result, color bool, pal palette) {
	fmt.Fprintf(b, "%s\n", colorize(color, pal.meta, pal.reset,
		"*** "+label(r.Cfg, 0, r.A.Name)+"\t"+bannerTimestamp(r.Cfg.ModTime[0], r.Cfg.TimeFormat)))
	fmt.Fprintf(b, "%s\n", colorize(color, pal.meta, pal.reset,
		"--- "+label(r.Cfg, 1, r.B.Name)+"\t"+bannerTimestamp(r.Cfg.ModTime[1], r.Cfg.TimeFormat)))
}

// writeContextSide renders one half (old or new) of a context hunk: every
// line in the window, prefixed "  " unchanged, "- " deleted (old side
// only), "+ " inserted (new side only), "! " changed. A side that has no
// record touching it within the window (a pure one-sided hunk) prints no
// lines at all, matching GNU diff, which omits the old (or new) block in
// that case; FormatContext still writes that side's range header line.
func writeContextSide(b *strings.Builder, r *Result, w hunkWindow, side int, color bool, pal palette) {
	start, end := w.startA, w.endA
	lines, buf := r.LinesA, r.A
	if side == 1 {
		start, end = w.startB, w.endB
		lines, buf = r.LinesB, r.B
	}
	if !windowHasSideChange(w.records, side) {
		return
	}
	i := start
	for _, rec := range w.records {
		recStart, recCount := rec.Line0, rec.Deleted
		if side == 1 {
			recStart, recCount = rec.Line1, rec.Inserted
		}
		for ; i < recStart; i++ {
			writeContextLine(b, buf, lines[i], "  ", "", color, r.Cfg, pal)
		}
		marker, code := contextMarker(rec, side, pal)
		for ; i < recStart+recCount; i++ {
			writeContextLine(b, buf, lines[i], marker, code, color, r.Cfg, pal)
		}
	}
	for ; i < end; i++ {
		writeContextLine(b, buf, lines[i], "  ", "", color, r.Cfg, pal)
	}
}

func windowHasSideChange(records []*ChangeRecord, side int) bool {
	for _, rec := range records {
		if side == 0 && rec.Deleted > 0 {
			return true
		}
		if side == 1 && rec.Inserted > 0 {
			return true
		}
	}
	return false
}

func contextMarker(rec *ChangeRecord, side int, pal palette) (marker, code string) {
	switch rec.Kind() {
	case Changed:
		return "! ", ""
	case Old:
		if side == 0 {
			return "- ", pal.old
		}
	case New:
		if side == 1 {
			return "+ ", pal.new
		}
	}
	return "  ", ""
}

func writeContextLine(b *strings.Builder, buf *Buffer, l Line, marker, code string, color bool, cfg *Config, pal palette) {
	text := lineText(buf, l, cfg)
	enabled := color && code != ""
	b.WriteString(marker)
	if enabled {
		b.WriteString(colorize(true, code, pal.reset, strings.TrimSuffix(text, "\n")))
		b.WriteString("\n")
	} else {
		b.WriteString(text)
	}
	if l.Incomplete {
		b.WriteString("\\ No newline at end of file\n")
	}
}
