// Package cmputil implements the byte-level identity check GNU diffutils'
// cmp(1) performs: report the first differing byte and line, or confirm
// two streams are identical, without ever materializing the line index
// or equivalence classes the line-diff engine builds. It is the minimal
// interface contract spec.md leaves for the cmp external collaborator.
package cmputil

import (
	"bufio"
	"io"
)

const blockSize = 64 * 1024

// FirstDifference reads a and b in lockstep and reports whether they are
// byte-identical; when they are not, byteNum and lineNum give the 1-based
// position of the first differing byte, the way cmp.c's block_compare and
// count_newlines do together.
func FirstDifference(a, b io.Reader) (identical bool, byteNum, lineNum int64, err error) {
	ra := bufio.NewReaderSize(a, blockSize)
	rb := bufio.NewReaderSize(b, blockSize)

	var pos, line int64 = 0, 1
	for {
		ca, erra := ra.ReadByte()
		cb, errb := rb.ReadByte()
		if erra != nil && erra != io.EOF {
			return false, 0, 0, erra
		}
		if errb != nil && errb != io.EOF {
			return false, 0, 0, errb
		}
		aEOF := erra == io.EOF
		bEOF := errb == io.EOF
		if aEOF && bEOF {
			return true, 0, 0, nil
		}
		if aEOF != bEOF || ca != cb {
			return false, pos + 1, line, nil
		}
		pos++
		if ca == '\n' {
			line++
		}
	}
}
