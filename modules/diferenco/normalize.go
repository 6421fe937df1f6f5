package diferenco

import (
	"golang.org/x/text/cases"

	"github.com/rivo/uniseg"
)

var caseFolder = cases.Fold()

// isHSpace reports whether b is horizontal white space under the C
// locale's notion of "space or tab" that diffutils' normalization rules
// operate on. Newlines never appear inside a Line's raw bytes.
func isHSpace(b byte) bool { return b == ' ' || b == '\t' }

// expandTabs simulates column position the way GNU diff's find_and_hash
// does when IGNORE_TAB_EXPANSION is active: a tab advances to the next
// multiple of tabSize columns, a backspace retreats one column (and
// un-emits the column it retreats over), and a carriage return resets to
// column zero. The result is byte-for-byte what would appear on screen,
// which is what two "differently indented with tabs vs. spaces" lines are
// compared against.
func expandTabs(raw []byte, tabSize int) []byte {
	out := make([]byte, 0, len(raw))
	col := 0
	for _, b := range raw {
		switch b {
		case '\t':
			spaces := tabSize - col%tabSize
			for i := 0; i < spaces; i++ {
				out = append(out, ' ')
			}
			col += spaces
		case '\b':
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			if col > 0 {
				col--
			}
		case '\r':
			out = out[:0]
			col = 0
		default:
			out = append(out, b)
			col++
		}
	}
	return out
}

// trimTrailingHSpace drops a trailing run of spaces/tabs, matching
// IGNORE_TRAILING_SPACE and the tail of IGNORE_SPACE_CHANGE.
func trimTrailingHSpace(b []byte) []byte {
	i := len(b)
	for i > 0 && isHSpace(b[i-1]) {
		i--
	}
	return b[:i]
}

// collapseHSpace squeezes every run of horizontal white space to a single
// ' ' (IGNORE_SPACE_CHANGE), after trimming a trailing run entirely.
func collapseHSpace(b []byte) []byte {
	b = trimTrailingHSpace(b)
	out := make([]byte, 0, len(b))
	i := 0
	for i < len(b) {
		if isHSpace(b[i]) {
			out = append(out, ' ')
			for i < len(b) && isHSpace(b[i]) {
				i++
			}
			continue
		}
		out = append(out, b[i])
		i++
	}
	return out
}

// dropAllHSpace removes every space/tab (IGNORE_ALL_SPACE).
func dropAllHSpace(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if !isHSpace(c) {
			out = append(out, c)
		}
	}
	return out
}

// normalizeWhiteSpace applies the single strongest active whitespace rule.
// The rule set is not layered: -w, -b, -Z and -E are mutually exclusive
// except that IGNORE_TAB_EXPANSION and IGNORE_TRAILING_SPACE may combine,
// which Config already encodes as IgnoreTabExpansionAndTrailingSpace.
func normalizeWhiteSpace(raw []byte, cfg *Config) []byte {
	switch cfg.IgnoreWhiteSpace {
	case IgnoreAllSpace:
		return dropAllHSpace(raw)
	case IgnoreSpaceChange:
		return collapseHSpace(raw)
	case IgnoreTrailingSpace:
		return trimTrailingHSpace(raw)
	case IgnoreTabExpansion:
		return expandTabs(raw, cfg.tabSize())
	case IgnoreTabExpansionAndTrailingSpace:
		return trimTrailingHSpace(expandTabs(raw, cfg.tabSize()))
	default:
		return raw
	}
}

// normalizeCase applies Unicode case folding (caseFolder, from
// golang.org/x/text/cases) to the whole line in one call, so multibyte
// letters fold correctly.
func normalizeCase(b []byte) []byte {
	return []byte(caseFolder.String(string(b)))
}

// normalizedContent is the bytes two lines are actually compared by, once
// the active equivalence predicate has been applied.
func normalizedContent(raw []byte, cfg *Config) []byte {
	out := raw
	if cfg.IgnoreWhiteSpace != IgnoreNoWhiteSpace {
		out = normalizeWhiteSpace(out, cfg)
	}
	if cfg.IgnoreCase {
		out = normalizeCase(out)
	}
	return out
}

// graphemeCount is used by the sdiff side-by-side layout (format_sdiff.go)
// to size columns by display width rather than by byte length.
func graphemeCount(b []byte) int {
	n := 0
	state := -1
	for len(b) > 0 {
		var cluster []byte
		cluster, b, _, state = uniseg.FirstGraphemeCluster(b, state)
		if len(cluster) == 0 {
			break
		}
		n++
	}
	return n
}

// truncateToWidth returns the longest prefix of b that is at most width
// graphemes wide, measured the same way graphemeCount does; used to clip
// an sdiff column's text to its half-line width without splitting a
// multibyte grapheme cluster in two.
func truncateToWidth(b []byte, width int) []byte {
	if width <= 0 {
		return nil
	}
	consumed := 0
	n := 0
	rest := b
	state := -1
	for len(rest) > 0 && n < width {
		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		if len(cluster) == 0 {
			break
		}
		consumed += len(cluster)
		n++
	}
	return b[:consumed]
}
