package diferenco

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func diffResult(t *testing.T, a, b string, cfg *Config) *Result {
	t.Helper()
	if cfg == nil {
		cfg = &Config{}
	}
	r, err := Diff(context.Background(), "a", []byte(a), "b", []byte(b), cfg)
	assert.NoError(t, err)
	return r
}

func TestFormatNormalReplacement(t *testing.T) {
	r := diffResult(t, "one\ntwo\nthree\n", "one\nTWO\nthree\n", nil)
	out, err := FormatNormal(r)
	assert.NoError(t, err)
	assert.Equal(t, "2c2\n< two\n---\n> TWO\n", out)
}

func TestFormatNormalInsertion(t *testing.T) {
	r := diffResult(t, "one\nthree\n", "one\ntwo\nthree\n", nil)
	out, err := FormatNormal(r)
	assert.NoError(t, err)
	assert.Equal(t, "1a2\n> two\n", out)
}

func TestFormatNormalDeletion(t *testing.T) {
	r := diffResult(t, "one\ntwo\nthree\n", "one\nthree\n", nil)
	out, err := FormatNormal(r)
	assert.NoError(t, err)
	assert.Equal(t, "2d1\n< two\n", out)
}

func TestFormatNormalNoNewlineAtEOF(t *testing.T) {
	r := diffResult(t, "one\ntwo", "one\nTWO", nil)
	out, err := FormatNormal(r)
	assert.NoError(t, err)
	assert.Contains(t, out, "\\ No newline at end of file")
}

func TestFormatNormalSkipsIgnoredHunks(t *testing.T) {
	cfg := &Config{IgnoreBlankLines: true}
	r := diffResult(t, "one\n   \nthree\n", "one\n\t\nthree\n", cfg)
	out, err := FormatNormal(r)
	assert.NoError(t, err)
	assert.Empty(t, out)
}
