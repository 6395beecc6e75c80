package rcutil

import (
	"os"
	"path/filepath"
)

// DefaultRcPath returns the bundled rc fragments under dataPath/default.d.
// A missing or non-directory default.d is an empty contribution, not an
// error.
func DefaultRcPath(dataPath string) ([]string, error) {
	dir := filepath.Join(dataPath, "default.d")
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}
	return ExpandPath(dir)
}

// DataPath locates the installation data directory: the directory holding
// the running executable. Packagers that relocate the bundled fragments set
// Resolver.DataPath instead.
func DataPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
