package convert

import (
	"path/filepath"
	"strings"
)

// OutputPath resolves the destination CSV path. An explicit output is used
// as given. Otherwise the input's base name is cut at its first '.' and
// given a .csv extension, placed in dir when dir is set.
func OutputPath(input, output, dir string) string {
	if output != "" {
		return output
	}
	name := filepath.Base(input)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	name += ".csv"
	if dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}
