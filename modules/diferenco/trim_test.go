package diferenco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimEndsCommonPrefixAndSuffix(t *testing.T) {
	a := []int{1, 2, 3, 9, 5, 6}
	b := []int{1, 2, 3, 8, 5, 6}
	trim := TrimEnds(a, b, 0)
	assert.Equal(t, 3, trim.PrefixEnd)
	assert.Equal(t, [2]int{4, 4}, trim.SuffixBegin)
}

func TestTrimEndsHorizonSlack(t *testing.T) {
	a := []int{1, 2, 3, 9, 5, 6}
	b := []int{1, 2, 3, 8, 5, 6}
	trim := TrimEnds(a, b, 1)
	assert.Equal(t, 2, trim.PrefixEnd)
	assert.Equal(t, [2]int{5, 5}, trim.SuffixBegin)
}

func TestTrimEndsNoCommonRegion(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{4, 5, 6}
	trim := TrimEnds(a, b, 0)
	assert.Equal(t, 0, trim.PrefixEnd)
	assert.Equal(t, [2]int{3, 3}, trim.SuffixBegin)
}

func TestTrimEndsIdentical(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2, 3}
	trim := TrimEnds(a, b, 0)
	assert.Equal(t, 3, trim.PrefixEnd)
	assert.Equal(t, [2]int{3, 3}, trim.SuffixBegin)
}
