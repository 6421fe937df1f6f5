package diferenco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatContextBasicHunk(t *testing.T) {
	r := diffResult(t, "one\ntwo\nthree\nfour\nfive\n", "one\ntwo\nTHREE\nfour\nfive\n", &Config{Context: 1})
	out, err := FormatContext(r)
	assert.NoError(t, err)
	assert.Contains(t, out, "*** a\t")
	assert.Contains(t, out, "--- b\t")
	assert.Contains(t, out, "***************\n")
	assert.Contains(t, out, "*** 2,4 ****\n")
	assert.Contains(t, out, "--- 2,4 ----\n")
	assert.Contains(t, out, "! three\n")
	assert.Contains(t, out, "! THREE\n")
}

func TestFormatContextPureInsertionOmitsOldBlock(t *testing.T) {
	r := diffResult(t, "one\nthree\n", "one\ntwo\nthree\n", &Config{Context: 1})
	out, err := FormatContext(r)
	assert.NoError(t, err)
	assert.NotContains(t, out, "\n- ")
	assert.Contains(t, out, "+ two\n")
}

func TestFormatContextIdenticalProducesNoWindows(t *testing.T) {
	r := diffResult(t, "one\ntwo\n", "one\ntwo\n", nil)
	out, err := FormatContext(r)
	assert.NoError(t, err)
	assert.Empty(t, out)
}
