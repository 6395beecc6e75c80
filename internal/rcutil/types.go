package rcutil

// Item is a single configuration setting injected directly rather than read
// from a file. Source is a human-readable provenance label such as "$EDITOR".
type Item struct {
	Section string
	Name    string
	Value   string
	Source  string
}

// Kind discriminates the two component variants.
type Kind string

const (
	// KindPath marks a component naming an rc file to be loaded and parsed
	// by the downstream config loader.
	KindPath Kind = "path"
	// KindItems marks a component carrying settings injected directly,
	// bypassing file parsing.
	KindItems Kind = "items"
)

// Component is one configuration source in the resolved load order. Exactly
// one of Path or Items is meaningful, selected by Kind. Components are never
// mutated after creation. Later components override earlier ones; applying
// that precedence belongs to the downstream merger, not to this package.
type Component struct {
	Kind  Kind
	Path  string
	Items []Item
}

func pathComponent(p string) Component {
	return Component{Kind: KindPath, Path: p}
}

func itemsComponent(items []Item) Component {
	return Component{Kind: KindItems, Items: items}
}
