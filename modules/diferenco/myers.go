/*---------------------------------------------------------------------------------------------
 *  Portions derived from the VS Code default lines diff computer.
 *  Original: https://github.com/microsoft/vscode/blob/main/src/vs/editor/common/diff/defaultLinesDiffComputer/algorithms/myersDiffAlgorithm.ts
 *  Licensed under the MIT License.
 *--------------------------------------------------------------------------------------------*/

package diferenco

import (
	"context"
	"math"
)

// MyersDiff computes a shortest edit script between two equivalence-class
// sequences with Myers' O(ND) algorithm (§4.4). It searches diagonals
// outward from the origin exactly like the 1986 paper's forward search;
// when the search cost exceeds costBound (or cfg.SpeedLargeFiles is set)
// it stops early and accepts the best split found so far rather than
// continuing to the true minimum, which is the explicit speed/quality
// trade spec.md §4.4 and §9 ask for. costBound follows the formula
// documented on costBoundFor: 2*sqrt(total length).
func MyersDiff(ctx context.Context, seq1, seq2 []int, cfg *Config) ([]Change, error) {
	if len(seq1) == 0 && len(seq2) == 0 {
		return []Change{}, nil
	}
	if len(seq1) == 0 {
		return []Change{{Ins: len(seq2)}}, nil
	}
	if len(seq2) == 0 {
		return []Change{{Del: len(seq1)}}, nil
	}

	costBound := costBoundFor(len(seq1)+len(seq2), cfg)

	seqX := seq1
	seqY := seq2
	getXAfterSnake := func(x, y int) int {
		for x < len(seqX) && y < len(seqY) && seqX[x] == seqY[y] {
			y++
			x++
		}
		return x
	}
	d := 0
	V := newFastIntArray()
	V.set(0, getXAfterSnake(0, 0))
	paths := newFastSnakeArray()
	if V.get(0) == 0 {
		paths.set(0, nil)
	} else {
		paths.set(0, newSnakePath(nil, 0, 0, V.get(0)))
	}
	k := 0
	bestK := 0
outer:
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		d++
		if d > costBound {
			k = bestK
			break outer
		}
		lowerBound := -min(d, len(seqY)+(d%2))
		upperBound := min(d, len(seqX)+(d%2))
		for k = lowerBound; k <= upperBound; k += 2 {
			maxXofDLineTop, maxXofDLineLeft := -1, -1
			if k != upperBound {
				maxXofDLineTop = V.get(k + 1)
			}
			if k != lowerBound {
				maxXofDLineLeft = V.get(k-1) + 1
			}
			x := min(max(maxXofDLineTop, maxXofDLineLeft), len(seqX))
			y := x - k
			if x > len(seqX) || y > len(seqY) {
				continue
			}
			newMaxX := getXAfterSnake(x, y)
			V.set(k, newMaxX)
			var lastPath *snakePath
			if x == maxXofDLineTop {
				lastPath = paths.get(k + 1)
			} else {
				lastPath = paths.get(k - 1)
			}
			if newMaxX != x {
				paths.set(k, newSnakePath(lastPath, x, y, newMaxX-x))
			} else {
				paths.set(k, lastPath)
			}
			if newMaxX-k > V.get(bestK)-bestK || (newMaxX-k == V.get(bestK)-bestK && newMaxX > V.get(bestK)) {
				bestK = k
			}
			if V.get(k) == len(seqX) && V.get(k)-k == len(seqY) {
				break outer
			}
		}
	}
	path := paths.get(k)
	lastAligningPosS1 := len(seqX)
	lastAligningPosS2 := len(seqY)
	if x, y := V.get(k), V.get(k)-k; x != len(seqX) || y != len(seqY) {
		// Cost bound hit before convergence: treat the best snake found so
		// far as the split and emit one trailing change for the rest, the
		// same "accept a non-minimal split" contract as the recursive
		// bidirectional version.
		lastAligningPosS1, lastAligningPosS2 = x, y
	}
	changes := make([]Change, 0, 10)
	if lastAligningPosS1 != len(seqX) || lastAligningPosS2 != len(seqY) {
		changes = append(changes, Change{
			P1:  lastAligningPosS1,
			P2:  lastAligningPosS2,
			Del: len(seqX) - lastAligningPosS1,
			Ins: len(seqY) - lastAligningPosS2,
		})
	}
	for {
		var endX, endY int
		if path != nil {
			endX = path.x + path.length
			endY = path.y + path.length
		}
		if endX != lastAligningPosS1 || endY != lastAligningPosS2 {
			changes = append(changes, Change{P1: endX, P2: endY, Del: lastAligningPosS1 - endX, Ins: lastAligningPosS2 - endY})
		}
		if path == nil {
			break
		}
		lastAligningPosS1 = path.x
		lastAligningPosS2 = path.y
		path = path.pre
	}
	reverseChanges(changes)
	return mergeAdjacentChanges(changes), nil
}

// costBoundFor implements the heuristic from spec.md §4.4/§9:
// "when --speed-large-files is set, or when the current cost exceeds
// sqrt(xlim-xoff + ylim-yoff) * 2, fall back to the best midpoint seen
// so far". SpeedLargeFiles halves the bound so the heuristic engages
// much sooner, matching GNU diff's -H "spend much less time but give a
// less-good answer" intent. --minimal disables the bound entirely.
func costBoundFor(n int, cfg *Config) int {
	if cfg != nil && cfg.Minimal {
		return math.MaxInt32
	}
	bound := int(2 * math.Sqrt(float64(n)))
	if bound < 4 {
		bound = 4
	}
	if cfg != nil && cfg.SpeedLargeFiles {
		bound /= 2
		if bound < 4 {
			bound = 4
		}
	}
	return bound
}

func reverseChanges(c []Change) {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}

// mergeAdjacentChanges folds together changes the cost-bound early exit
// can leave touching (its synthetic trailing change and the last real
// one), so callers never see two Change records covering the same run.
func mergeAdjacentChanges(changes []Change) []Change {
	out := changes[:0]
	for _, c := range changes {
		if n := len(out); n > 0 {
			prev := &out[n-1]
			if prev.P1+prev.Del == c.P1 && prev.P2+prev.Ins == c.P2 {
				prev.Del += c.Del
				prev.Ins += c.Ins
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

type snakePath struct {
	pre          *snakePath
	x, y, length int
}

func newSnakePath(pre *snakePath, x, y, length int) *snakePath {
	return &snakePath{pre: pre, x: x, y: y, length: length}
}

// fastIntArray is a growable array addressable by negative indices,
// standing in for the V array of Myers' paper where diagonal k ranges
// over [-d, d].
type fastIntArray struct {
	positiveArr []int
	negativeArr []int
}

func newFastIntArray() *fastIntArray {
	return &fastIntArray{positiveArr: make([]int, 16), negativeArr: make([]int, 16)}
}

func (t *fastIntArray) get(i int) int {
	if i < 0 {
		return t.negativeArr[-i-1]
	}
	return t.positiveArr[i]
}

func (t *fastIntArray) set(i int, v int) {
	if i < 0 {
		i = -i - 1
		t.negativeArr = growInts(t.negativeArr, i)
		t.negativeArr[i] = v
		return
	}
	t.positiveArr = growInts(t.positiveArr, i)
	t.positiveArr[i] = v
}

func growInts(a []int, i int) []int {
	if i < len(a) {
		return a
	}
	n := make([]int, max(len(a)*2, i+1))
	copy(n, a)
	return n
}

type fastSnakeArray struct {
	positiveArr map[int]*snakePath
	negativeArr map[int]*snakePath
}

func newFastSnakeArray() *fastSnakeArray {
	return &fastSnakeArray{positiveArr: make(map[int]*snakePath), negativeArr: make(map[int]*snakePath)}
}

func (t *fastSnakeArray) get(i int) *snakePath {
	if i < 0 {
		return t.negativeArr[-i-1]
	}
	return t.positiveArr[i]
}

func (t *fastSnakeArray) set(i int, v *snakePath) {
	if i < 0 {
		t.negativeArr[-i-1] = v
		return
	}
	t.positiveArr[i] = v
}
