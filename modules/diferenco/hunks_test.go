package diferenco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeRecordKind(t *testing.T) {
	assert.Equal(t, Changed, (&ChangeRecord{Deleted: 1, Inserted: 1}).Kind())
	assert.Equal(t, Old, (&ChangeRecord{Deleted: 1}).Kind())
	assert.Equal(t, New, (&ChangeRecord{Inserted: 1}).Kind())
	assert.Equal(t, Unchanged, (&ChangeRecord{}).Kind())
}

func TestMergeHunksMergesWithinThreshold(t *testing.T) {
	recs := []*ChangeRecord{
		{Line0: 0, Deleted: 1, Line1: 0, Inserted: 1},
		{Line0: 3, Deleted: 1, Line1: 3, Inserted: 1},
	}
	groups := MergeHunks(recs, 2)
	assert.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}

func TestMergeHunksSplitsBeyondThreshold(t *testing.T) {
	recs := []*ChangeRecord{
		{Line0: 0, Deleted: 1, Line1: 0, Inserted: 1},
		{Line0: 10, Deleted: 1, Line1: 10, Inserted: 1},
	}
	groups := MergeHunks(recs, 2)
	assert.Len(t, groups, 2)
}

func TestMergeHunksShrinksThresholdAfterIgnoredRecord(t *testing.T) {
	recs := []*ChangeRecord{
		{Line0: 0, Deleted: 1, Line1: 0, Inserted: 1, Ignore: true},
		{Line0: 3, Deleted: 1, Line1: 3, Inserted: 1},
	}
	// gap is 2: merges at context=2 (2*context would also merge, but
	// shrinking to context=1 after an ignored record must split it).
	groups := MergeHunks(recs, 1)
	assert.Len(t, groups, 2)
}

func TestApplyIgnoreRulesBlankLines(t *testing.T) {
	cfg := &Config{IgnoreBlankLines: true}
	bufA, _ := PrepareBuffer("a", []byte("   \n"), cfg)
	bufB, _ := PrepareBuffer("b", []byte("\t\n"), cfg)
	linesA := SplitLines(bufA)
	linesB := SplitLines(bufB)

	rec := &ChangeRecord{Line0: 0, Deleted: 1, Line1: 0, Inserted: 1}
	assert.True(t, hunkIsIgnorable(rec, bufA, linesA, bufB, linesB, cfg))
}

func TestApplyIgnoreRulesRequiresAllLinesIgnorable(t *testing.T) {
	cfg := &Config{IgnoreBlankLines: true}
	bufA, _ := PrepareBuffer("a", []byte("   \n"), cfg)
	bufB, _ := PrepareBuffer("b", []byte("real text\n"), cfg)
	linesA := SplitLines(bufA)
	linesB := SplitLines(bufB)

	rec := &ChangeRecord{Line0: 0, Deleted: 1, Line1: 0, Inserted: 1}
	assert.False(t, hunkIsIgnorable(rec, bufA, linesA, bufB, linesB, cfg))
}

func TestApplyIgnoreRulesMatchingRegexp(t *testing.T) {
	re, err := CompileIgnoreRegexp(`^#`)
	assert.NoError(t, err)
	cfg := &Config{IgnoreMatchingLines: re}
	bufA, _ := PrepareBuffer("a", []byte("# comment\n"), cfg)
	bufB, _ := PrepareBuffer("b", []byte("# other comment\n"), cfg)
	linesA := SplitLines(bufA)
	linesB := SplitLines(bufB)

	rec := &ChangeRecord{Line0: 0, Deleted: 1, Line1: 0, Inserted: 1}
	assert.True(t, hunkIsIgnorable(rec, bufA, linesA, bufB, linesB, cfg))
}
