// Package dirwalk implements the recursive directory-pairing contract
// GNU diffutils' dir.c performs before handing each matched file pair to
// the line-diff engine: walk both trees, join by relative path, and
// report entries that exist on only one side. It is the minimal
// interface contract spec.md leaves for the directory-traversal external
// collaborator.
package dirwalk

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sort"
)

// PathPair is one matched (or one-sided) entry found while walking two
// directory trees in lockstep.
type PathPair struct {
	// Rel is the path relative to both roots.
	Rel string
	// AbsA, AbsB are the absolute paths on each side; empty when the
	// entry exists on only that side (dir.c's "Only in ..." case).
	AbsA, AbsB string
	// IsDir reports whether this entry is a directory on at least one
	// side (a file-vs-directory mismatch is reported with IsDir true
	// and both AbsA and AbsB set).
	IsDir bool
}

// Pairs walks dirA and dirB and yields one PathPair per relative path
// present under either root, in lexical order, the same left-to-right,
// depth-first order `diff -r` reports entries in.
func Pairs(dirA, dirB string) iter.Seq2[PathPair, error] {
	return func(yield func(PathPair, error) bool) {
		relsA, err := collect(dirA)
		if err != nil {
			yield(PathPair{}, err)
			return
		}
		relsB, err := collect(dirB)
		if err != nil {
			yield(PathPair{}, err)
			return
		}
		for _, rel := range mergedSorted(relsA, relsB) {
			infoA, okA := relsA[rel]
			infoB, okB := relsB[rel]
			p := PathPair{Rel: rel}
			if okA {
				p.AbsA = filepath.Join(dirA, rel)
				p.IsDir = p.IsDir || infoA
			}
			if okB {
				p.AbsB = filepath.Join(dirB, rel)
				p.IsDir = p.IsDir || infoB
			}
			if !yield(p, nil) {
				return
			}
		}
	}
}

// collect returns every relative path under root mapped to whether it is
// a directory.
func collect(root string) (map[string]bool, error) {
	out := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return nil
			}
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		out[rel] = d.IsDir()
		return nil
	})
	return out, err
}

func mergedSorted(a, b map[string]bool) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for rel := range a {
		seen[rel] = struct{}{}
		out = append(out, rel)
	}
	for rel := range b {
		if _, ok := seen[rel]; !ok {
			out = append(out, rel)
		}
	}
	sort.Strings(out)
	return out
}
