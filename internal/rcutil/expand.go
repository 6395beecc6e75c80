package rcutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves ~ and $VAR shorthand in path and returns the rc files
// it denotes. A directory expands to its direct children named *.rc, joined
// with the directory, in lexical order; anything else, existing or not,
// passes through as a single path for the downstream loader to accept or
// reject. A path that cannot be stat'd takes the single-path branch; a
// directory that cannot be listed is a real error and is returned as-is.
func ExpandPath(path string) ([]string, error) {
	p := expandUserVars(path)
	info, err := os.Stat(p)
	if err != nil || !info.IsDir() {
		return []string{p}, nil
	}
	entries, err := os.ReadDir(p)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".rc") {
			paths = append(paths, filepath.Join(p, e.Name()))
		}
	}
	return paths, nil
}

// expandUserVars expands a leading ~ to the user's home directory and
// substitutes $VAR and ${VAR} references from the process environment.
func expandUserVars(path string) string {
	if path == "~" || (len(path) > 1 && path[0] == '~' && os.IsPathSeparator(path[1])) {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	return os.ExpandEnv(path)
}
