package hgx

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hgx-scm/hgx/internal/rcutil"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var (
	srcJSON  bool
	srcYAML  bool
	srcPlain bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "List configuration sources in load order",
		Long:  "Sources prints every location hgx would read configuration from, in the order the loader consults them. Later sources override earlier ones.",
		RunE:  runConfigSources,
	}
	cfgCmd.AddCommand(sourcesCmd)

	sourcesCmd.Flags().BoolVar(&srcJSON, "json", false, "emit JSON")
	sourcesCmd.Flags().BoolVar(&srcYAML, "yaml", false, "emit YAML")
	sourcesCmd.Flags().BoolVar(&srcPlain, "plain", false, "one source per line, no table")
}

// source is the externally visible shape of one resolved component.
type source struct {
	Order int          `json:"order" yaml:"order"`
	Kind  string       `json:"kind" yaml:"kind"`
	Path  string       `json:"path,omitempty" yaml:"path,omitempty"`
	Items []sourceItem `json:"items,omitempty" yaml:"items,omitempty"`
}

type sourceItem struct {
	Section string `json:"section" yaml:"section"`
	Name    string `json:"name" yaml:"name"`
	Value   string `json:"value" yaml:"value"`
	Source  string `json:"source" yaml:"source"`
}

func runConfigSources(_ *cobra.Command, _ []string) error {
	resolver := &rcutil.Resolver{}
	comps, err := resolver.Components()
	if err != nil {
		return err
	}
	sources := toSources(comps)

	switch {
	case srcJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sources)
	case srcYAML:
		return yaml.NewEncoder(os.Stdout).Encode(sources)
	case srcPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		return writeSourcesPlain(os.Stdout, sources)
	}
	return writeSourcesTable(os.Stdout, sources)
}

func toSources(comps []rcutil.Component) []source {
	out := make([]source, 0, len(comps))
	for i, c := range comps {
		s := source{Order: i + 1, Kind: string(c.Kind), Path: c.Path}
		for _, it := range c.Items {
			s.Items = append(s.Items, sourceItem{
				Section: it.Section,
				Name:    it.Name,
				Value:   it.Value,
				Source:  it.Source,
			})
		}
		out = append(out, s)
	}
	return out
}

func writeSourcesPlain(w io.Writer, sources []source) error {
	for _, s := range sources {
		switch rcutil.Kind(s.Kind) {
		case rcutil.KindPath:
			fmt.Fprintf(w, "path\t%s\n", s.Path)
		case rcutil.KindItems:
			for _, it := range s.Items {
				fmt.Fprintf(w, "item\t%s.%s=%s (%s)\n", it.Section, it.Name, it.Value, it.Source)
			}
		}
	}
	return nil
}

func writeSourcesTable(w io.Writer, sources []source) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "KIND", "SOURCE")
	for _, s := range sources {
		switch rcutil.Kind(s.Kind) {
		case rcutil.KindPath:
			if err := table.Append([]string{strconv.Itoa(s.Order), "path", s.Path}); err != nil {
				return err
			}
		case rcutil.KindItems:
			if len(s.Items) == 0 {
				if err := table.Append([]string{strconv.Itoa(s.Order), "items", "(no environment overrides)"}); err != nil {
					return err
				}
				continue
			}
			for _, it := range s.Items {
				row := fmt.Sprintf("%s.%s=%s (%s)", it.Section, it.Name, it.Value, it.Source)
				if err := table.Append([]string{strconv.Itoa(s.Order), "items", row}); err != nil {
					return err
				}
			}
		}
	}
	return table.Render()
}
