package diferenco

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	strftime "github.com/ncruces/go-strftime"

	"github.com/linediff/godiff/modules/diferenco/color"
)

// rangeBounds turns a 0-based (start, count) pair into the 1-based
// (first, last) line numbers GNU diff's range notation prints: for a
// pure insertion point (count == 0) last is first-1, the "b < a" case
// print_number_range documents.
func rangeBounds(start0, count int) (first, last int) {
	first = start0 + 1
	last = start0 + count
	return
}

// rangeString renders the bounds the way normal/context/unified/RCS
// output all do: a single number when the range covers exactly one line
// (or, for an empty range, the anchor line), "a,b" otherwise.
func rangeString(start0, count int) string {
	a, b := rangeBounds(start0, count)
	switch {
	case a > b:
		return strconv.Itoa(b)
	case a == b:
		return strconv.Itoa(a)
	default:
		return fmt.Sprintf("%d,%d", a, b)
	}
}

// colorEnabled resolves Config.Color against an output stream, the way
// GNU diff's --color=auto gates on isatty(1).
func colorEnabled(cfg *Config, out *os.File) bool {
	switch cfg.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if cfg.PresumeOutputIsTTY {
			return true
		}
		return out != nil && isatty.IsTerminal(out.Fd())
	}
}

// palette holds the ANSI codes used to style added/removed/header text,
// overridable via Config.Palette: colon-separated key=style entries with
// keys old, new, hd (or header) and meta, each style an mgutz/ansi style
// string; other keys are ignored. meta and header are deliberately
// distinct fields, like git diff's color.diff.{meta,frag}: meta paints the
// "--- a/foo"/"*** a" file banners, header the "@@ ... @@"/"***************"
// hunk-boundary markers. Context-format range lines ("*** 1,3 ****") are
// not colored.
type palette struct {
	old, new, header, meta, reset string
}

// defaultPalette seeds from the engine's own ColorConfig (the
// key/color table in the color subpackage) rather than hand-picking
// escape codes again here.
func defaultPalette() palette {
	cc := color.NewColorConfig()
	return palette{
		old:    cc[color.Old],
		new:    cc[color.New],
		header: cc[color.Frag],
		meta:   cc[color.Meta],
		reset:  color.Reset,
	}
}

// resolvePalette lets --palette override individual entries using
// mgutz/ansi's style-string syntax ("red+b", "239", ...), the same
// parser the teacher's survey templates use for user-facing color
// overrides.
func resolvePalette(cfg *Config) palette {
	p := defaultPalette()
	if cfg.Palette == "" {
		return p
	}
	for _, field := range strings.Split(cfg.Palette, ":") {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		code := ansi.ColorCode(v)
		switch k {
		case "old":
			p.old = code
		case "new":
			p.new = code
		case "hd", "header":
			p.header = code
		case "meta":
			p.meta = code
		}
	}
	return p
}

// colorize wraps s in a palette color when enabled is true.
func colorize(enabled bool, code, reset, s string) string {
	if !enabled {
		return s
	}
	return code + s + reset
}

// expandOutputTabs rewrites literal tabs in rendered line text to spaces
// so columns still line up despite the extra leading marker character
// diff output prepends (-t/--expand-tabs).
func expandOutputTabs(s string, tabSize int) string {
	if tabSize <= 0 {
		tabSize = 8
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		if r == '\n' {
			col = 0
		} else {
			col++
		}
		b.WriteRune(r)
	}
	return b.String()
}

// bannerTimestamp formats a file's modification time for context/unified
// headers, using Config.TimeFormat if set or the historical default
// otherwise. GNU diff formats with nstrftime against the file's local
// timezone and nanosecond field; go-strftime gives the same directive
// set without hand-rolling a formatter.
func bannerTimestamp(t time.Time, format string) string {
	if format == "" {
		format = "%a %b %e %T %Y"
	}
	out, err := strftime.Format(format, t)
	if err != nil {
		return t.Format("Mon Jan 2 15:04:05 2006")
	}
	return out
}

// label picks the displayed name/timestamp for side `side` (0 or 1),
// honoring --label overrides: Labels[0] replaces the first use,
// Labels[1] every use after that, matching GNU diff's two-use limit.
func label(cfg *Config, side int, name string) string {
	if side == 0 && cfg.Labels[0] != "" {
		return cfg.Labels[0]
	}
	if side == 1 && cfg.Labels[1] != "" {
		return cfg.Labels[1]
	}
	if side > 1 && cfg.Labels[1] != "" {
		return cfg.Labels[1]
	}
	return name
}
