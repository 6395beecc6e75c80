package rcutil

import "os"

// EnvLookup reports the value of an environment variable and whether it is
// set at all. Injecting the lookup keeps tests off the process environment.
type EnvLookup func(name string) (string, bool)

// OSEnv reads the process environment.
func OSEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// envChecklist maps environment variables to the config entry each one
// seeds. Order matters: the downstream merger lets later entries win, so
// VISUAL overrides EDITOR when both are set.
var envChecklist = [...]struct {
	env     string
	section string
	name    string
}{
	{"EDITOR", "ui", "editor"},
	{"VISUAL", "ui", "editor"},
	{"PAGER", "pager", "pager"},
}

// EnvItems extracts config items from a fixed checklist of environment
// variables. A variable that is set, even to the empty string, contributes
// an item; an unset one is skipped. A nil env defaults to the process
// environment at call time.
func EnvItems(env EnvLookup) []Item {
	if env == nil {
		env = OSEnv
	}
	var items []Item
	for _, c := range envChecklist {
		v, ok := env(c.env)
		if !ok {
			continue
		}
		items = append(items, Item{
			Section: c.section,
			Name:    c.name,
			Value:   v,
			Source:  "$" + c.env,
		})
	}
	return items
}
