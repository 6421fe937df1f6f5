package diferenco

import (
	"bytes"
	"context"
	"fmt"
)

// Result is everything a C7 formatter needs: the two prepared buffers, their
// line indexes, and the post-processed edit script.
type Result struct {
	Cfg    *Config
	A, B   *Buffer
	LinesA []Line
	LinesB []Line
	Script *Script

	// fnSearch/fnMatch back functionHeaderFor's memoized backward scan,
	// find_function's find_function_last_search/find_function_last_match.
	fnSearch int
	fnMatch  int
}

// Identical reports whether the two inputs compare equal under the active
// equivalence rule.
func (r *Result) Identical() bool { return r.Script.Empty() }

// Diff runs the engine over two named byte buffers: it prepares each
// buffer (C1), splits and classifies their lines (C2), computes the
// changed-line bitmaps (C3 trim + C4 discard/core-differ), builds the
// boundary-shifted change script (C5), and marks the records the ignore
// rules cover (C6, applyIgnoreRules). Formatters (C7) group records into
// hunk windows and render from the returned Result.
func Diff(ctx context.Context, nameA string, dataA []byte, nameB string, dataB []byte, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	bufA, err := PrepareBuffer(nameA, dataA, cfg)
	if err != nil {
		return nil, fmt.Errorf("preparing %s: %w", nameA, err)
	}
	bufB, err := PrepareBuffer(nameB, dataB, cfg)
	if err != nil {
		return nil, fmt.Errorf("preparing %s: %w", nameB, err)
	}

	linesA := SplitLines(bufA)
	linesB := SplitLines(bufB)

	table := NewEquivTable(cfg)
	equivsA := table.Classify(bufA, linesA)
	equivsB := table.Classify(bufB, linesB)

	cb, trim, middleA, middleB, err := computeChangedBitmaps(ctx, equivsA, equivsB, cfg)
	if err != nil {
		return nil, err
	}

	isBlank := func(side, i int) bool {
		if side == 0 {
			return isBlankLine(bufA, linesA[trim.PrefixEnd+i])
		}
		return isBlankLine(bufB, linesB[trim.PrefixEnd+i])
	}
	script := BuildScript(cb, trim, middleA, middleB, isBlank)

	applyIgnoreRules(script, bufA, linesA, bufB, linesB, cfg)

	return &Result{Cfg: cfg, A: bufA, B: bufB, LinesA: linesA, LinesB: linesB, Script: script, fnMatch: -1}, nil
}

// isBlankLine reports whether a line holds nothing but spaces, tabs and
// carriage returns. The check is the same whatever whitespace rule is
// active; -B and the boundary-shift blank-line preference both use it.
func isBlankLine(b *Buffer, l Line) bool {
	return len(bytes.TrimFunc(l.Bytes(b), func(r rune) bool { return r == ' ' || r == '\t' || r == '\r' })) == 0
}

