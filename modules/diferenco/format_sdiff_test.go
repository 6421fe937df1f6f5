package diferenco

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSdiffAssistChanged(t *testing.T) {
	r := diffResult(t, "one\ntwo\nthree\n", "one\nTWO\nthree\n", nil)
	out, err := FormatSdiffAssist(r)
	assert.NoError(t, err)
	assert.Equal(t, "c 2 2\n", out)
}

func TestFormatSdiffAssistInsertion(t *testing.T) {
	r := diffResult(t, "one\nthree\n", "one\ntwo\nthree\n", nil)
	out, err := FormatSdiffAssist(r)
	assert.NoError(t, err)
	assert.Equal(t, "a - 2\n", out)
}

func TestFormatSdiffAssistDeletion(t *testing.T) {
	r := diffResult(t, "one\ntwo\nthree\n", "one\nthree\n", nil)
	out, err := FormatSdiffAssist(r)
	assert.NoError(t, err)
	assert.Equal(t, "d 2 -\n", out)
}

func TestFormatSdiffAssistSkipsIgnoredHunks(t *testing.T) {
	cfg := &Config{IgnoreBlankLines: true}
	r := diffResult(t, "one\n   \nthree\n", "one\n\t\nthree\n", cfg)
	out, err := FormatSdiffAssist(r)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestSdiffColumnWidthsDefaultWidth(t *testing.T) {
	half, col2 := sdiffColumnWidths(130, 8, false)
	assert.Equal(t, 61, half)
	assert.Equal(t, 64, col2)
}

func TestSdiffColumnWidthsZeroWidthUsesDefault(t *testing.T) {
	half, col2 := sdiffColumnWidths(0, 8, false)
	assert.Equal(t, 61, half)
	assert.Equal(t, 64, col2)
}

func TestSdiffColumnWidthsExpandTabsNarrowsTabStop(t *testing.T) {
	half, col2 := sdiffColumnWidths(130, 8, true)
	assert.Equal(t, 63, half)
	assert.Equal(t, 67, col2)
}

func TestFormatSdiffColumnsCommonAndChangedLines(t *testing.T) {
	r := diffResult(t, "common\nold\n", "common\nnew\n", nil)
	out, err := FormatSdiffColumns(r, 130)
	assert.NoError(t, err)

	half, _ := sdiffColumnWidths(130, r.Cfg.tabSize(), r.Cfg.ExpandTabs)
	commonLine := "common" + strings.Repeat(" ", half-len("common")) + "   common\n"
	changedLine := "old" + strings.Repeat(" ", half-len("old")) + " | new\n"
	assert.Contains(t, out, commonLine)
	assert.Contains(t, out, changedLine)
}

func TestFormatSdiffColumnsInsertionUsesRightOnlyGutter(t *testing.T) {
	r := diffResult(t, "one\n", "one\ntwo\n", nil)
	out, err := FormatSdiffColumns(r, 130)
	assert.NoError(t, err)
	half, _ := sdiffColumnWidths(130, r.Cfg.tabSize(), r.Cfg.ExpandTabs)
	assert.Contains(t, out, strings.Repeat(" ", half)+" > two\n")
}

func TestFormatSdiffColumnsDeletionUsesLeftOnlyGutter(t *testing.T) {
	r := diffResult(t, "one\ntwo\n", "one\n", nil)
	out, err := FormatSdiffColumns(r, 130)
	assert.NoError(t, err)
	half, _ := sdiffColumnWidths(130, r.Cfg.tabSize(), r.Cfg.ExpandTabs)
	assert.Contains(t, out, "two"+strings.Repeat(" ", half-len("two"))+" < \n")
}

func TestSdiffCellTruncatesOverlongText(t *testing.T) {
	assert.Equal(t, "ab", sdiffCell("abcdef", 2))
}

func TestSdiffCellPadsShortText(t *testing.T) {
	assert.Equal(t, "ab  ", sdiffCell("ab", 4))
}
