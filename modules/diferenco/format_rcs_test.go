package diferenco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRCSReplacement(t *testing.T) {
	r := diffResult(t, "one\ntwo\nthree\n", "one\nTWO\nthree\n", nil)
	out, err := FormatRCS(r)
	assert.NoError(t, err)
	assert.Equal(t, "d2 1\na2 1\nTWO\n", out)
}

func TestFormatRCSInsertion(t *testing.T) {
	r := diffResult(t, "one\nthree\n", "one\ntwo\nthree\n", nil)
	out, err := FormatRCS(r)
	assert.NoError(t, err)
	assert.Equal(t, "a1 1\ntwo\n", out)
}

func TestFormatRCSDeletion(t *testing.T) {
	r := diffResult(t, "one\ntwo\nthree\n", "one\nthree\n", nil)
	out, err := FormatRCS(r)
	assert.NoError(t, err)
	assert.Equal(t, "d2 1\n", out)
}
