package rcutil

import (
	"os"
	"path/filepath"
	"strings"
)

// RCPathEnv is the override variable. When it is set at all, even to the
// empty string, its separator-delimited path list replaces system and user
// discovery entirely.
const RCPathEnv = "HGRCPATH"

// Resolver computes the ordered configuration sources for one startup. The
// zero value resolves against the process environment, the provider chosen
// for the host OS, and the executable's data directory.
type Resolver struct {
	// Env looks up environment variables; nil means the process environment.
	Env EnvLookup
	// Platform supplies the system and user rc locations; nil means the
	// provider selected for the host OS at init.
	Platform PlatformPaths
	// DataPath is the installation data directory holding default.d; empty
	// means the running executable's directory.
	DataPath string
}

func (r *Resolver) env() EnvLookup {
	if r.Env != nil {
		return r.Env
	}
	return OSEnv
}

func (r *Resolver) platform() PlatformPaths {
	if r.Platform != nil {
		return r.Platform
	}
	return hostPlatform
}

func (r *Resolver) dataPath() string {
	if r.DataPath != "" {
		return r.DataPath
	}
	return DataPath()
}

// Components returns the ordered configuration sources to consult. With
// HGRCPATH set, the result is the environment items followed by the
// expansion of each non-empty override segment; system and user locations
// are not consulted. Otherwise it is the bundled defaults and system paths,
// the environment items, then the user paths. Missing directories anywhere
// contribute nothing; genuine I/O failures abort the resolution.
func (r *Resolver) Components() ([]Component, error) {
	env := r.env()
	envComp := itemsComponent(EnvItems(env))

	if override, ok := env(RCPathEnv); ok {
		comps := []Component{envComp}
		for _, seg := range strings.Split(override, string(os.PathListSeparator)) {
			if seg == "" {
				continue
			}
			paths, err := ExpandPath(seg)
			if err != nil {
				return nil, err
			}
			for _, p := range paths {
				comps = append(comps, pathComponent(p))
			}
		}
		return comps, nil
	}

	defaults, err := DefaultRcPath(r.dataPath())
	if err != nil {
		return nil, err
	}
	platform := r.platform()

	var comps []Component
	for _, p := range defaults {
		comps = append(comps, pathComponent(filepath.Clean(p)))
	}
	for _, p := range platform.SystemPaths() {
		comps = append(comps, pathComponent(filepath.Clean(p)))
	}
	comps = append(comps, envComp)
	for _, p := range platform.UserPaths() {
		comps = append(comps, pathComponent(filepath.Clean(p)))
	}
	return comps, nil
}
