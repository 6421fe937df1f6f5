// Package cliconfig loads .godiffrc.toml, the optional file godiff reads
// before applying command-line flags so a project can pin its own
// default comparison rules (algorithm, case and blank-line handling, tab
// size, context width, horizon, color palette) without every invocation
// repeating them.
package cliconfig

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// File is the decoded shape of .godiffrc.toml. Every field is optional;
// a flag the user passes explicitly always overrides it. godiff applies
// algorithm, ignore_case, ignore_blank_lines, tab_size, context,
// horizon_lines and palette; ignore_white_space, ignore_matching_lines,
// color and function_header are decoded but godiff does not apply them.
type File struct {
	Algorithm            string `toml:"algorithm,omitempty"`
	IgnoreCase           bool   `toml:"ignore_case,omitempty"`
	IgnoreWhiteSpace     string `toml:"ignore_white_space,omitempty"`
	IgnoreBlankLines     bool   `toml:"ignore_blank_lines,omitempty"`
	IgnoreMatchingLines  string `toml:"ignore_matching_lines,omitempty"`
	TabSize              int    `toml:"tab_size,omitempty"`
	Context              int    `toml:"context,omitempty"`
	HorizonLines         int    `toml:"horizon_lines,omitempty"`
	Color                string `toml:"color,omitempty"`
	Palette              string `toml:"palette,omitempty"`
	FunctionHeader       string `toml:"function_header,omitempty"`
}

// Load reads the first .godiffrc.toml found in dir or one of its parent
// directories up to the filesystem root, and failing that the one in the
// home directory. A missing file is not an error; Load returns a zero File.
func Load(dir string) (*File, error) {
	path, ok := findRCFile(dir)
	if !ok {
		return &File{}, nil
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func findRCFile(dir string) (string, bool) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	for {
		candidate := filepath.Join(dir, ".godiffrc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".godiffrc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
