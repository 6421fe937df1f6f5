package diferenco

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Algorithm selects the core differ used to compute an edit script between
// two equivalence-class sequences.
type Algorithm int

const (
	Unspecified Algorithm = iota
	Myers
	ONP
	Histogram
	Patience
	Minimal
)

// AlgorithmFromName parses a --diff-algorithm value.
func AlgorithmFromName(name string) (Algorithm, error) {
	switch name {
	case "", "default":
		return Unspecified, nil
	case "myers":
		return Myers, nil
	case "onp":
		return ONP, nil
	case "histogram":
		return Histogram, nil
	case "patience":
		return Patience, nil
	case "minimal":
		return Minimal, nil
	default:
		return Unspecified, &UnsupportedAlgorithmError{Name: name}
	}
}

// WhiteSpace controls how the equivalence predicate treats horizontal
// whitespace. Only one of these is active at a time; when several CLI flags
// are given the strongest wins (-w beats -b beats -Z beats none).
type WhiteSpace int

const (
	// IgnoreNoWhiteSpace means all white space is significant (the default).
	IgnoreNoWhiteSpace WhiteSpace = iota
	// IgnoreTabExpansion ignores changes due to tab expansion (-E).
	IgnoreTabExpansion
	// IgnoreTrailingSpace ignores changes in trailing horizontal white space (-Z).
	IgnoreTrailingSpace
	// IgnoreTabExpansionAndTrailingSpace combines the two above; they are
	// independent and may be ORed together.
	IgnoreTabExpansionAndTrailingSpace
	// IgnoreSpaceChange collapses runs of horizontal white space (-b).
	IgnoreSpaceChange
	// IgnoreAllSpace discards all horizontal white space (-w).
	IgnoreAllSpace
)

// Config threads every tunable of the engine explicitly instead of relying
// on process-wide mutable globals, per the redesign note in spec.md §9.
// A zero-value Config behaves like plain `diff a b` with no options.
type Config struct {
	// Algorithm picks the core differ. Unspecified means Myers.
	Algorithm Algorithm

	// IgnoreCase case-folds each character before comparing (-i).
	IgnoreCase bool
	// IgnoreWhiteSpace is the active horizontal-whitespace rule.
	IgnoreWhiteSpace WhiteSpace
	// IgnoreBlankLines drops hunks whose affected lines are all blank (-B).
	IgnoreBlankLines bool
	// IgnoreMatchingLines drops hunks whose affected lines all match this
	// pattern (-I PATTERN). Nil means the rule is inactive.
	IgnoreMatchingLines *IgnoreRegexp
	// TabSize is the column width of a tab stop, used by IgnoreTabExpansion
	// and by the expand-tabs output option. Zero means 8.
	TabSize int

	// StripTrailingCR removes a \r immediately before \n from both inputs
	// before any other processing (--strip-trailing-cr).
	StripTrailingCR bool
	// Text forces text-mode comparison even if a NUL byte is sniffed (-a).
	Text bool

	// Minimal forces the O(ND) differ to search for a guaranteed minimal
	// script rather than applying the discard-uninteresting-lines heuristic
	// or the large-file speed heuristic (-d / --minimal).
	Minimal bool
	// SpeedLargeFiles engages the cost-bound heuristic more aggressively
	// for files with a low density of changes (-H).
	SpeedLargeFiles bool

	// Context is the number of unchanged lines of context to show around a
	// hunk in context/unified output. Zero is a valid value (-U0/-C0).
	Context int
	// HorizonLines is extra slack kept past the common prefix/suffix so the
	// boundary-shift pass has room to manoeuvre.
	HorizonLines int

	// FunctionHeader is the regexp used to label hunks with the enclosing
	// function in context/unified output (-F/-p).
	FunctionHeader *IgnoreRegexp

	// Labels override the displayed file name/timestamp, used at most twice
	// (--label). Labels[0] applies to the first use, Labels[1] to the
	// second and any further use.
	Labels [2]string

	// TimeFormat is the strftime-style format used for context/unified
	// banner timestamps. Empty means the historical context default
	// "%a %b %e %T %Y".
	TimeFormat string
	// ModTime holds the two inputs' modification times for the
	// context/unified banner line. The engine only ever sees byte
	// buffers, so callers (typically the CLI, which does stat the real
	// files) supply these; a zero Time is formatted like any other
	// (January 1 of year 1), not replaced by the Unix epoch.
	ModTime [2]time.Time

	// ExpandTabs rewrites tabs in the output to spaces so columns line up
	// despite the one extra leading character diff formats add (-t).
	ExpandTabs bool
	// InitialTab uses a tab rather than a space before the text of an input
	// line (-T).
	InitialTab bool
	// SuppressBlankEmpty omits the leading space/tab before an empty line.
	SuppressBlankEmpty bool

	// Brief reports only "Files X and Y differ" (-q/--brief).
	Brief bool
	// ReportIdenticalFiles reports when files are the same (-s).
	ReportIdenticalFiles bool

	// Color controls ANSI styling of formatter output.
	Color ColorMode
	// Palette overrides default color-context colors (--palette).
	Palette string
	// PresumeOutputIsTTY forces the color-gating decision for tests.
	PresumeOutputIsTTY bool

	// Log is the logger for structured diagnostics. A nil Log is replaced
	// with a discarding logger. No code in this package writes entries
	// to it.
	Log *logrus.Entry
}

// ColorMode mirrors GNU diff's enum colors_style.
type ColorMode int

const (
	ColorNever ColorMode = iota
	ColorAuto
	ColorAlways
)

func (c *Config) logger() *logrus.Entry {
	if c.Log != nil {
		return c.Log
	}
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return logrus.NewEntry(l)
}

func (c *Config) tabSize() int {
	if c.TabSize <= 0 {
		return 8
	}
	return c.TabSize
}

func (c *Config) context() int {
	if c.Context < 0 {
		return DefaultContextLines
	}
	return c.Context
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
