package diferenco

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FormatUnified renders GNU diff's -u output.
func FormatUnified(r *Result) (string, error) {
	context := r.Cfg.context()
	windows := buildWindows(r, context)
	if len(windows) == 0 {
		return "", nil
	}
	var b strings.Builder
	color := colorEnabled(r.Cfg, os.Stdout)
	pal := resolvePalette(r.Cfg)

	fmt.Fprintf(&b, "%s\n", colorize(color, pal.meta, pal.reset,
		"--- "+label(r.Cfg, 0, r.A.Name)+"\t"+bannerTimestamp(r.Cfg.ModTime[0], r.Cfg.TimeFormat)))
	fmt.Fprintf(&b, "%s\n", colorize(color, pal.meta, pal.reset,
		"+++ "+label(r.Cfg, 1, r.B.Name)+"\t"+bannerTimestamp(r.Cfg.ModTime[1], r.Cfg.TimeFormat)))

	for _, w := range windows {
		writeUnifiedHunk(&b, r, w, color, pal)
	}
	return b.String(), nil
}

// unifiedRangeString renders a hunk-header range the way unified output
// requires: "start,count" (1-based start, line count), a bare line number
// when the range is exactly one line, and "start,0" for an empty range,
// where start is the line just before the empty range — spec.md's
// "A = x\n, B = \"\"" scenario requires the header "@@ -1 +0,0 @@", not
// "@@ -1 +0 @@", so patch can tell an empty range from a one-line one.
// Unlike rangeString's "first,last" form, the second number is a count.
func unifiedRangeString(start0, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("%d,0", start0)
	case 1:
		return strconv.Itoa(start0 + 1)
	default:
		return fmt.Sprintf("%d,%d", start0+1, count)
	}
}

func writeUnifiedHunk(b *strings.Builder, r *Result, w hunkWindow, color bool, pal palette) {
	header := fmt.Sprintf("@@ -%s +%s @@", unifiedRangeString(w.startA, w.endA-w.startA), unifiedRangeString(w.startB, w.endB-w.startB))
	if fn := functionHeaderFor(r, w.startA); fn != "" {
		header += " " + fn
	}
	b.WriteString(colorize(color, pal.header, pal.reset, header))
	b.WriteString("\n")

	i, j := w.startA, w.startB
	for _, rec := range w.records {
		for i < rec.Line0 && j < rec.Line1 {
			writeUnifiedLine(b, " ", r.A, r.LinesA[i], color, "", pal.reset, r.Cfg)
			i++
			j++
		}
		for k := 0; k < rec.Deleted; k++ {
			writeUnifiedLine(b, "-", r.A, r.LinesA[i], color, pal.old, pal.reset, r.Cfg)
			i++
		}
		for k := 0; k < rec.Inserted; k++ {
			writeUnifiedLine(b, "+", r.B, r.LinesB[j], color, pal.new, pal.reset, r.Cfg)
			j++
		}
	}
	for i < w.endA && j < w.endB {
		writeUnifiedLine(b, " ", r.A, r.LinesA[i], color, "", pal.reset, r.Cfg)
		i++
		j++
	}
}

func writeUnifiedLine(b *strings.Builder, marker string, buf *Buffer, l Line, color bool, code, reset string, cfg *Config) {
	text := lineText(buf, l, cfg)
	b.WriteString(marker)
	if color && code != "" {
		b.WriteString(colorize(true, code, reset, strings.TrimSuffix(text, "\n")))
		b.WriteString("\n")
	} else {
		b.WriteString(text)
	}
	if l.Incomplete {
		b.WriteString("\\ No newline at end of file\n")
	}
}
