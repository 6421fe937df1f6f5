package diferenco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classifyText(t *testing.T, cfg *Config, text string) []int {
	t.Helper()
	b, err := PrepareBuffer("a", []byte(text), cfg)
	assert.NoError(t, err)
	lines := SplitLines(b)
	return NewEquivTable(cfg).Classify(b, lines)
}

func TestEquivTableSameClassForIdenticalLines(t *testing.T) {
	ids := classifyText(t, &Config{}, "a\nb\na\n")
	assert.Equal(t, ids[0], ids[2])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestEquivTableIgnoreCase(t *testing.T) {
	ids := classifyText(t, &Config{IgnoreCase: true}, "Hello\nhello\n")
	assert.Equal(t, ids[0], ids[1])
}

func TestEquivTableIgnoreAllSpace(t *testing.T) {
	ids := classifyText(t, &Config{IgnoreWhiteSpace: IgnoreAllSpace}, "a b\nab\n")
	assert.Equal(t, ids[0], ids[1])
}

func TestEquivTableIgnoreSpaceChange(t *testing.T) {
	ids := classifyText(t, &Config{IgnoreWhiteSpace: IgnoreSpaceChange}, "a  b\na b\n")
	assert.Equal(t, ids[0], ids[1])
}

func TestEquivTableIncompleteLineNeverMatchesComplete(t *testing.T) {
	cfg := &Config{}
	bufComplete, err := PrepareBuffer("a", []byte("x\n"), cfg)
	assert.NoError(t, err)
	bufIncomplete, err := PrepareBuffer("b", []byte("x"), cfg)
	assert.NoError(t, err)

	table := NewEquivTable(cfg)
	idComplete := table.Classify(bufComplete, SplitLines(bufComplete))[0]
	idIncomplete := table.Classify(bufIncomplete, SplitLines(bufIncomplete))[0]
	assert.NotEqual(t, idComplete, idIncomplete)
}
