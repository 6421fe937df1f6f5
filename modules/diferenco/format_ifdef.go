package diferenco

import (
	"fmt"
	"strings"
)

// IfdefOptions configures -D NAME output: which C preprocessor macro
// guards the "new" text, and optional overrides of the per-group and
// per-line format strings spec.md §6 documents. A zero IfdefOptions with
// a MacroName set reproduces GNU diff's own defaults.
//
// Only the %<, %>, %=, %l and %L specifiers are implemented; the numeric
// %[-][W][.P]{doxX}LETTER forms and the %(A=B?T:E) ternary are accepted
// in a custom format string but passed through unexpanded, since no
// caller in this engine's own CLI surface needs them — GNU diff's own
// manual calls them rarely-used escape hatches for third-party
// pretty-printers, not something -D's default merge output relies on.
type IfdefOptions struct {
	MacroName    string
	GroupFormats [4]string // indexed by HunkKind; empty entries use the default
	LineFormat   string    // empty means "%l\n"
}

// FormatIfdef renders GNU diff's -D NAME merged output.
func FormatIfdef(r *Result, opt IfdefOptions) (string, error) {
	if opt.MacroName == "" {
		return "", fmt.Errorf("ifdef format requires a macro name")
	}
	lineFormat := opt.LineFormat
	if lineFormat == "" {
		lineFormat = "%l\n"
	}

	var b strings.Builder
	i := 0
	for _, rec := range r.Script.Records() {
		writeIfdefGroup(&b, r, Unchanged, opt, lineFormat, r.LinesA[i:rec.Line0], nil)

		oldLines := r.LinesA[rec.Line0 : rec.Line0+rec.Deleted]
		newLines := r.LinesB[rec.Line1 : rec.Line1+rec.Inserted]
		if rec.Ignore {
			writeIfdefGroup(&b, r, Unchanged, opt, lineFormat, oldLines, nil)
		} else {
			writeIfdefGroup(&b, r, rec.Kind(), opt, lineFormat, oldLines, newLines)
		}
		i = rec.Line0 + rec.Deleted
	}
	writeIfdefGroup(&b, r, Unchanged, opt, lineFormat, r.LinesA[i:], nil)
	return b.String(), nil
}

func writeIfdefGroup(b *strings.Builder, r *Result, kind HunkKind, opt IfdefOptions, lineFormat string, oldLines, newLines []Line) {
	if len(oldLines) == 0 && len(newLines) == 0 {
		return
	}
	format := opt.GroupFormats[kind]
	if format == "" {
		format = defaultIfdefGroupFormat(kind, opt.MacroName)
	}
	b.WriteString(expandIfdefFormat(format, r, lineFormat, oldLines, newLines))
}

func defaultIfdefGroupFormat(kind HunkKind, macro string) string {
	switch kind {
	case Old:
		return fmt.Sprintf("#ifndef %s\n%%<#endif /* not %s */\n", macro, macro)
	case New:
		return fmt.Sprintf("#ifdef %s\n%%>#endif /* %s */\n", macro, macro)
	case Changed:
		return fmt.Sprintf("#ifndef %s\n%%<#else /* %s */\n%%>#endif /* %s */\n", macro, macro, macro)
	default:
		return "%="
	}
}

// expandIfdefFormat substitutes %<, %>, %= with the rendered old/new/
// common line blocks; every other "%X" escape is left untouched.
func expandIfdefFormat(format string, r *Result, lineFormat string, oldLines, newLines []Line) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			b.WriteByte(c)
			continue
		}
		switch format[i+1] {
		case '<':
			writeIfdefLines(&b, r.A, oldLines, lineFormat)
			i++
		case '>':
			writeIfdefLines(&b, r.B, newLines, lineFormat)
			i++
		case '=':
			writeIfdefLines(&b, r.A, oldLines, lineFormat)
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func writeIfdefLines(b *strings.Builder, buf *Buffer, lines []Line, lineFormat string) {
	for _, l := range lines {
		b.WriteString(expandIfdefLineFormat(lineFormat, buf, l))
	}
}

func expandIfdefLineFormat(format string, buf *Buffer, l Line) string {
	text := string(l.Bytes(buf))
	withoutNL := strings.TrimSuffix(text, "\n")
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			b.WriteByte(c)
			continue
		}
		switch format[i+1] {
		case 'l':
			b.WriteString(withoutNL)
			i++
		case 'L':
			if text == withoutNL {
				b.WriteString(withoutNL + "\n")
			} else {
				b.WriteString(text)
			}
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
