package diferenco

import "github.com/dlclark/regexp2"

// DefaultContextLines is the number of lines of context context/unified
// output shows around a hunk when Config.Context is left negative.
const DefaultContextLines = 3

// IgnoreRegexp wraps a compiled pattern for -I/--ignore-matching-lines and
// -F/--show-function-line. GNU diff compiles these with the glibc POSIX
// basic/extended regex engine; regexp2 is used here instead of the
// standard library's RE2 because RE2 deliberately refuses backreferences
// and some POSIX bracket-expression corners glibc accepts, which real
// .gitattributes-style function-header patterns (and user -I patterns
// ported from GNU diff) do use. The dialect is therefore ECMAScript-like,
// not POSIX BRE; patterns relying on BRE-only escapes such as bare `\(`
// grouping should use the unescaped form instead.
type IgnoreRegexp struct {
	re *regexp2.Regexp
}

// CompileIgnoreRegexp compiles pattern for use as an IgnoreMatchingLines
// or FunctionHeader rule.
func CompileIgnoreRegexp(pattern string) (*IgnoreRegexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	return &IgnoreRegexp{re: re}, nil
}

// MatchString reports whether s matches the pattern.
func (r *IgnoreRegexp) MatchString(s string) bool {
	if r == nil || r.re == nil {
		return false
	}
	ok, err := r.re.MatchString(s)
	return err == nil && ok
}

// FindStringIndex returns the leftmost match's [start, end) byte offsets,
// or nil if there is no match.
func (r *IgnoreRegexp) FindStringIndex(s string) []int {
	if r == nil || r.re == nil {
		return nil
	}
	m, err := r.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}
	// regexp2 reports rune positions; convert them to byte offsets.
	runes := []rune(s)
	start := len(string(runes[:m.Index]))
	return []int{start, start + len(string(runes[m.Index:m.Index+m.Length]))}
}
