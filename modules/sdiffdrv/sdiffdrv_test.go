package sdiffdrv

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssistStreamChangedHunk(t *testing.T) {
	hunks, err := ParseAssistStream(bufio.NewReader(strings.NewReader("c 2 2\n")))
	assert.NoError(t, err)
	assert.Equal(t, []Hunk{{Kind: 'c', AStart: 2, AEnd: 2, BStart: 2, BEnd: 2}}, hunks)
}

func TestParseAssistStreamInsertionHunk(t *testing.T) {
	hunks, err := ParseAssistStream(bufio.NewReader(strings.NewReader("a - 2\n")))
	assert.NoError(t, err)
	assert.Equal(t, []Hunk{{Kind: 'a', AStart: 0, AEnd: 0, BStart: 2, BEnd: 2}}, hunks)
}

func TestParseAssistStreamMultiLineRange(t *testing.T) {
	hunks, err := ParseAssistStream(bufio.NewReader(strings.NewReader("d 2,4 -\n")))
	assert.NoError(t, err)
	assert.Equal(t, []Hunk{{Kind: 'd', AStart: 2, AEnd: 4, BStart: 0, BEnd: 0}}, hunks)
}

func TestParseAssistStreamMultipleLines(t *testing.T) {
	hunks, err := ParseAssistStream(bufio.NewReader(strings.NewReader("c 2 2\nd 5 -\n")))
	assert.NoError(t, err)
	assert.Len(t, hunks, 2)
}

func TestParseAssistStreamRejectsMalformedLine(t *testing.T) {
	_, err := ParseAssistStream(bufio.NewReader(strings.NewReader("bogus line here\n")))
	assert.Error(t, err)
}

func TestParseAssistStreamEmptyInput(t *testing.T) {
	hunks, err := ParseAssistStream(bufio.NewReader(strings.NewReader("")))
	assert.NoError(t, err)
	assert.Empty(t, hunks)
}
