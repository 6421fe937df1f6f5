package diferenco

import (
	"fmt"
	"strings"
)

// FormatRCS renders GNU diff's -n (RCS) output: forward file order,
// "aLINE COUNT" / "dLINE COUNT" headers against side 0's numbering, body
// lines following an "a" header immediately (no terminator, since COUNT
// already says how many to read).
func FormatRCS(r *Result) (string, error) {
	var b strings.Builder
	for _, rec := range r.Script.Records() {
		if rec.Ignore {
			continue
		}
		writeRCSHunk(&b, r, rec)
	}
	return b.String(), nil
}

func writeRCSHunk(b *strings.Builder, r *Result, rec *ChangeRecord) {
	if rec.Deleted > 0 {
		fmt.Fprintf(b, "d%d %d\n", rec.Line0+1, rec.Deleted)
	}
	if rec.Inserted > 0 {
		fmt.Fprintf(b, "a%d %d\n", rec.Line0+rec.Deleted, rec.Inserted)
		for i := 0; i < rec.Inserted; i++ {
			b.WriteString(lineText(r.B, r.LinesB[rec.Line1+i], r.Cfg))
		}
	}
}
