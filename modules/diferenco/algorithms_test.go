package diferenco

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// applyChangesGeneric mirrors applyChanges but works over any comparable
// element type, for the algorithms that operate directly on strings rather
// than pre-hashed equivalence-class ints.
func applyChangesGeneric[E comparable](seq1, seq2 []E, changes []Change) []E {
	var out []E
	p1 := 0
	for _, ch := range changes {
		out = append(out, seq1[p1:ch.P1]...)
		out = append(out, seq2[ch.P2:ch.P2+ch.Ins]...)
		p1 = ch.P1 + ch.Del
	}
	out = append(out, seq1[p1:]...)
	return out
}

func TestOnpDiffReconstructsTarget(t *testing.T) {
	a := []string{"a", "b", "c", "d"}
	b := []string{"a", "x", "c", "y"}
	changes, err := OnpDiff(context.Background(), a, b)
	assert.NoError(t, err)
	assert.Equal(t, b, applyChangesGeneric(a, b, changes))
}

func TestOnpDiffIdenticalYieldsNoChanges(t *testing.T) {
	a := []string{"a", "b", "c"}
	changes, err := OnpDiff(context.Background(), a, append([]string(nil), a...))
	assert.NoError(t, err)
	assert.Empty(t, changes)
}

func TestOnpDiffRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}
	_, err := OnpDiff(ctx, a, b)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHistogramDiffReconstructsTarget(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e"}
	b := []string{"a", "z", "c", "d", "w"}
	changes, err := HistogramDiff(context.Background(), a, b)
	assert.NoError(t, err)
	assert.Equal(t, b, applyChangesGeneric(a, b, changes))
}

func TestHistogramDiffRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}
	_, err := HistogramDiff(ctx, a, b)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPatienceChangesReconstructsTarget(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e"}
	b := []string{"a", "z", "c", "d", "w"}
	changes, err := PatienceChanges(context.Background(), a, b)
	assert.NoError(t, err)
	assert.Equal(t, b, applyChangesGeneric(a, b, changes))
}

func TestPatienceChangesRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}
	_, err := PatienceChanges(ctx, a, b)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscardConfusingLinesKeepsRareLines(t *testing.T) {
	// "1" is rare and distinctive, sitting at an edge (not stranded
	// between two long discard runs, which would make undoIsolatedDiscards
	// restore the runs around it); the repeated "0" noise line occurs
	// often enough on both sides to be discarded.
	equivsA := []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	equivsB := []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	keepA, keepB := discardConfusingLines(equivsA, equivsB, false)
	assert.Contains(t, keepA, 0)
	assert.Contains(t, keepB, 0)
	assert.NotContains(t, keepA, 5)
}

func TestDiscardConfusingLinesMinimalKeepsEverything(t *testing.T) {
	equivsA := []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	equivsB := []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	keepA, keepB := discardConfusingLines(equivsA, equivsB, true)
	assert.Len(t, keepA, len(equivsA))
	assert.Len(t, keepB, len(equivsB))
}
