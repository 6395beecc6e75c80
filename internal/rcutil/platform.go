package rcutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// PlatformPaths supplies the OS-specific default rc locations. Exactly two
// implementations exist, one for Windows and one for everything else,
// selected once at package init. Callers never branch on the host OS per
// call.
type PlatformPaths interface {
	// SystemPaths returns machine-wide rc locations, lowest precedence first.
	SystemPaths() []string
	// UserPaths returns per-user rc locations, lowest precedence first.
	UserPaths() []string
}

// hostPlatform is fixed at init and never reassigned.
var hostPlatform = detectPlatform(runtime.GOOS)

func detectPlatform(goos string) PlatformPaths {
	if goos == "windows" {
		return windowsPaths{}
	}
	return posixPaths{}
}

// rcDirFiles lists dir's *.rc entries, silently contributing nothing when
// the directory is absent or unreadable. System rc directories are optional
// on most installs.
func rcDirFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".rc") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths
}

// posixPaths discovers rc locations under /etc/mercurial and the user's
// home and XDG config directories.
type posixPaths struct {
	env  EnvLookup // nil means the process environment
	root string    // system config root, defaults to /etc/mercurial
}

func (p posixPaths) lookup(name string) (string, bool) {
	if p.env != nil {
		return p.env(name)
	}
	return OSEnv(name)
}

func (p posixPaths) sysRoot() string {
	if p.root != "" {
		return p.root
	}
	return "/etc/mercurial"
}

func (p posixPaths) SystemPaths() []string {
	root := p.sysRoot()
	paths := []string{filepath.Join(root, "hgrc")}
	return append(paths, rcDirFiles(filepath.Join(root, "hgrc.d"))...)
}

func (p posixPaths) UserPaths() []string {
	home, ok := p.lookup("HOME")
	if !ok {
		home, _ = os.UserHomeDir()
	}
	confighome, ok := p.lookup("XDG_CONFIG_HOME")
	if !ok || !filepath.IsAbs(confighome) {
		confighome = filepath.Join(home, ".config")
	}
	return []string{
		filepath.Join(home, ".hgrc"),
		filepath.Join(confighome, "hg", "hgrc"),
	}
}

// windowsPaths discovers rc locations next to the executable and under the
// user profile.
type windowsPaths struct {
	env    EnvLookup // nil means the process environment
	exeDir string    // defaults to the running executable's directory
}

func (w windowsPaths) lookup(name string) (string, bool) {
	if w.env != nil {
		return w.env(name)
	}
	return OSEnv(name)
}

func (w windowsPaths) dir() string {
	if w.exeDir != "" {
		return w.exeDir
	}
	return DataPath()
}

func (w windowsPaths) SystemPaths() []string {
	dir := w.dir()
	paths := []string{filepath.Join(dir, "mercurial.ini")}
	return append(paths, rcDirFiles(filepath.Join(dir, "hgrc.d"))...)
}

func (w windowsPaths) UserPaths() []string {
	profile, ok := w.lookup("USERPROFILE")
	if !ok {
		profile, _ = os.UserHomeDir()
	}
	return []string{
		filepath.Join(profile, "mercurial.ini"),
		filepath.Join(profile, ".hgrc"),
	}
}
