package diferenco

// Trim is the result of C3: the common-prefix/suffix boundaries, in
// equivalence-class-vector indices, of the region that must actually be
// fed to the core differ.
type Trim struct {
	PrefixEnd   int // first index, in both vectors, where they may differ
	SuffixBegin [2]int // first index of the common suffix, per side
}

// TrimEnds implements C3: find the longest common prefix and suffix of the
// two equivalence-class vectors, then retreat by horizonLines so the
// boundary-shift pass (C5) has slack to work with. Equal classes are
// compared directly (an integer compare stands in for the word-at-a-time
// byte scan diffutils performs directly against the buffers — the
// equivalence classes already encode the same equality relation).
func TrimEnds(a, b []int, horizonLines int) Trim {
	n := min(len(a), len(b))
	prefix := 0
	for prefix < n && a[prefix] == b[prefix] {
		prefix++
	}
	if prefix > horizonLines {
		prefix -= horizonLines
	} else {
		prefix = 0
	}

	suffix := 0
	maxSuffix := n - prefix
	for suffix < maxSuffix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}
	if suffix > horizonLines {
		suffix -= horizonLines
	} else {
		suffix = 0
	}

	return Trim{
		PrefixEnd:   prefix,
		SuffixBegin: [2]int{len(a) - suffix, len(b) - suffix},
	}
}
