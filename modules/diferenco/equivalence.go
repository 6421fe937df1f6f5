package diferenco

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// equivClass is one bucket-chain entry: a representative line plus the
// hash that put it there. Collisions within a bucket are resolved by
// exact byte comparison of the normalized content, which is the full
// equivalence predicate already applied once up front.
type equivClass struct {
	id   int
	hash uint64
	norm []byte
}

// EquivTable assigns small integer equivalence classes to lines, honoring
// the active whitespace/case rules (§4.2). It mirrors GNU diff's
// buckets/equivs pair, but as two logical Go maps instead of a hand-rolled
// negative-index bucket array — the design note in spec.md §9 explicitly
// sanctions this restructuring, the behavior it preserves is that an
// incomplete final line can only ever match another incomplete final
// line, never a complete one sharing the same bytes.
type EquivTable struct {
	cfg        *Config
	main       map[uint64][]equivClass
	incomplete map[uint64][]equivClass
	nextID     int
}

// NewEquivTable creates an empty table. Class ids start at 1; 0 is never
// assigned, kept free as the sentinel spec.md §3 reserves for "never
// matches anything" (we never need to hand it out explicitly because an
// incomplete line always gets a fresh id from the disjoint `incomplete`
// namespace instead).
func NewEquivTable(cfg *Config) *EquivTable {
	return &EquivTable{
		cfg:        cfg,
		main:       make(map[uint64][]equivClass),
		incomplete: make(map[uint64][]equivClass),
	}
}

// classify assigns (or reuses) an equivalence class id for line, hashing
// xxhash.Sum64 over the predicate-normalized bytes instead of the hand
// "rol7" accumulator: any two lines the active predicate treats as equal
// normalize to identical byte slices, so they are guaranteed to collide
// into the same bucket and then compare byte-equal.
func (t *EquivTable) classify(buf *Buffer, line Line) int {
	raw := line.Bytes(buf)
	norm := normalizedContent(raw, t.cfg)
	h := xxhash.Sum64(norm)

	table := t.main
	if line.Incomplete {
		table = t.incomplete
	}
	for _, c := range table[h] {
		if bytes.Equal(c.norm, norm) {
			return c.id
		}
	}
	t.nextID++
	c := equivClass{id: t.nextID, hash: h, norm: norm}
	table[h] = append(table[h], c)
	return c.id
}

// Classify assigns an equivalence-class vector to every line of lines.
func (t *EquivTable) Classify(buf *Buffer, lines []Line) []int {
	out := make([]int, len(lines))
	for i, l := range lines {
		out[i] = t.classify(buf, l)
	}
	return out
}

// EquivMax is one more than the maximum class id handed out so far,
// matching struct file_data's equiv_max field.
func (t *EquivTable) EquivMax() int { return t.nextID + 1 }
