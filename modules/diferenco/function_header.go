package diferenco

import "strings"

// functionHeaderFor implements -F/-p's find_function: scan side 0
// backward from lineNum0 (exclusive) down to where the previous call
// left off, looking for a line matching Config.FunctionHeader. If
// nothing matches in the newly searched range, it falls back to
// whichever line matched last time, the same "we've already passed this
// function's header" memoization context.c uses so repeated hunks in
// the same function don't re-scan the whole file.
func functionHeaderFor(r *Result, lineNum0 int) string {
	if r.Cfg.FunctionHeader == nil {
		return ""
	}
	last := r.fnSearch
	r.fnSearch = lineNum0
	for i := lineNum0 - 1; i >= last && i >= 0; i-- {
		text := strings.TrimRight(string(r.LinesA[i].Bytes(r.A)), "\n")
		if r.Cfg.FunctionHeader.MatchString(text) {
			r.fnMatch = i
			return text
		}
	}
	if r.fnMatch >= 0 && r.fnMatch < len(r.LinesA) {
		return strings.TrimRight(string(r.LinesA[r.fnMatch].Bytes(r.A)), "\n")
	}
	return ""
}
