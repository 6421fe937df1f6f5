package diferenco

import (
	"bytes"
	"fmt"
	"io"
)

// sniffSize bounds how much of a file is scanned for a NUL byte before
// deciding whether it is text. GNU diffutils' sip() only tests the first
// block it happens to read rather than the whole file; we mirror that
// instead of paying for a full scan on large binaries.
const sniffSize = 8192

// Buffer is one side's prepared input: a contiguous byte buffer plus the
// bookkeeping C1 is responsible for establishing. After PrepareBuffer
// returns, Data always ends in '\n' (real or synthesized).
type Buffer struct {
	Name string
	Data []byte

	// MissingNewline records that the original input did not end in '\n';
	// Data has had one appended so every downstream stage can assume
	// lines are '\n'-terminated.
	MissingNewline bool
}

// PrepareBuffer implements C1: strip trailing CRs if requested, detect
// binary content, and guarantee a trailing newline. data is consumed as
// given (already fully read); callers load files, exec.Command output, or
// stdin before calling this so the engine itself never touches a
// descriptor directly.
func PrepareBuffer(name string, data []byte, cfg *Config) (*Buffer, error) {
	if !cfg.Text {
		n := len(data)
		if n > sniffSize {
			n = sniffSize
		}
		if bytes.IndexByte(data[:n], 0) >= 0 {
			return nil, &FatalError{Name: name, Err: ErrBinaryFile}
		}
	}

	if cfg.StripTrailingCR {
		data = stripTrailingCR(data)
	}

	b := &Buffer{Name: name, Data: data}
	if len(data) == 0 {
		return b, nil
	}
	if data[len(data)-1] != '\n' {
		buf := make([]byte, len(data)+1)
		copy(buf, data)
		buf[len(data)] = '\n'
		b.Data = buf
		b.MissingNewline = true
	}
	return b, nil
}

// stripTrailingCR turns every "\r\n" into "\n", preserving any lone '\r'
// not immediately followed by '\n'. It returns a new slice, or data
// itself when data holds no "\r\n".
func stripTrailingCR(data []byte) []byte {
	if !bytes.Contains(data, []byte("\r\n")) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] == '\r' && i+1 < len(data) && data[i+1] == '\n' {
			continue
		}
		out = append(out, data[i])
	}
	return out
}

// ReadAll reads r to EOF and wraps a read error in a FatalError naming
// name. It gives the name "-" no special meaning; the caller chooses r.
func ReadAll(name string, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FatalError{Name: name, Err: fmt.Errorf("read: %w", err)}
	}
	return data, nil
}
