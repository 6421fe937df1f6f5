package diferenco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareBufferAppendsMissingNewline(t *testing.T) {
	b, err := PrepareBuffer("a", []byte("hello"), &Config{})
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", string(b.Data))
	assert.True(t, b.MissingNewline)
}

func TestPrepareBufferKeepsRealNewline(t *testing.T) {
	b, err := PrepareBuffer("a", []byte("hello\n"), &Config{})
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", string(b.Data))
	assert.False(t, b.MissingNewline)
}

func TestPrepareBufferEmpty(t *testing.T) {
	b, err := PrepareBuffer("a", nil, &Config{})
	assert.NoError(t, err)
	assert.Empty(t, b.Data)
	assert.False(t, b.MissingNewline)
}

func TestPrepareBufferRejectsBinary(t *testing.T) {
	_, err := PrepareBuffer("a", []byte("hello\x00world"), &Config{})
	assert.ErrorIs(t, err.(*FatalError).Unwrap(), ErrBinaryFile)
}

func TestPrepareBufferTextForcesThroughBinary(t *testing.T) {
	b, err := PrepareBuffer("a", []byte("hello\x00world"), &Config{Text: true})
	assert.NoError(t, err)
	assert.Contains(t, string(b.Data), "\x00")
}

func TestPrepareBufferStripTrailingCR(t *testing.T) {
	b, err := PrepareBuffer("a", []byte("one\r\ntwo\r\n"), &Config{StripTrailingCR: true})
	assert.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(b.Data))
}

func TestPrepareBufferStripTrailingCRKeepsLoneCR(t *testing.T) {
	b, err := PrepareBuffer("a", []byte("one\rtwo\r\n"), &Config{StripTrailingCR: true})
	assert.NoError(t, err)
	assert.Equal(t, "one\rtwo\n", string(b.Data))
}
