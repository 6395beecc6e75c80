// Package rcutil determines where hgx reads configuration from at startup.
// It resolves an ordered list of components, each either an rc file path to
// load or a set of directly injected items, honoring the HGRCPATH override
// and the host platform's default locations. It is internal; the config
// loader parses and merges whatever this package discovers.
package rcutil
