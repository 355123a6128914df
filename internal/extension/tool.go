package extension

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stackcraft-dev/stackcraft/internal/manifest"
	"github.com/stackcraft-dev/stackcraft/internal/scaffold"
)

// Tool orders relative to the built-in tools in a listing.
const (
	OrderPre  = manifest.OrderPre
	OrderPost = manifest.OrderPost
)

// ActionContext is passed to a tool action.
type ActionContext struct {
	TemplateName string
	DistFolder   string

	// RegisterDocFragmentDir adds a directory searched for an AGENTS.md
	// fragment when the project's document is synthesized.
	RegisterDocFragmentDir func(dir string)
}

// Tool is an externally supplied tool.
type Tool struct {
	Value   string
	Label   string
	Order   string // OrderPre, OrderPost or empty
	Action  func(ctx context.Context, ac ActionContext) error
	Command string
}

// Option is an entry in a tool listing.
type Option struct {
	Value string
	Label string
}

// Find returns the tool whose value is name.
func Find(tools []Tool, name string) (Tool, bool) {
	for _, t := range tools {
		if t.Value == name {
			return t, true
		}
	}
	return Tool{}, false
}

// ListOptions returns the listing order: tools ordered "pre", then the
// built-in options, then every other tool. Declaration order is kept
// within each group.
func ListOptions(builtins []Option, tools []Tool) []Option {
	out := make([]Option, 0, len(builtins)+len(tools))
	for _, t := range tools {
		if t.Order == OrderPre {
			out = append(out, Option{Value: t.Value, Label: t.Label})
		}
	}
	out = append(out, builtins...)
	for _, t := range tools {
		if t.Order != OrderPre {
			out = append(out, Option{Value: t.Value, Label: t.Label})
		}
	}
	return out
}

// LoadFile reads a tools file and converts its entries to tools.
func LoadFile(path string) ([]Tool, error) {
	f, err := manifest.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading tools: %w", err)
	}

	tools := make([]Tool, 0, len(f.Tools))
	for _, entry := range f.Tools {
		tools = append(tools, FromEntry(entry))
	}
	return tools, nil
}

// FromEntry converts a tools file entry. An entry with an overlay or a
// fragments directory gets an action that merges the overlay into the
// project and registers the fragment directory.
func FromEntry(entry manifest.ToolEntry) Tool {
	t := Tool{
		Value:   entry.Value,
		Label:   entry.Label,
		Order:   entry.Order,
		Command: entry.Command,
	}

	fragments := entry.Fragments
	if fragments == "" {
		fragments = entry.Overlay
	}
	if entry.Overlay == "" && fragments == "" {
		return t
	}

	overlay := entry.Overlay
	t.Action = func(_ context.Context, ac ActionContext) error {
		if overlay != "" {
			if _, err := scaffold.CopyTree(os.DirFS(overlay), ".", ac.DistFolder, scaffold.Options{
				MergePackageJSON: true,
			}); err != nil {
				return fmt.Errorf("applying %s overlay: %w", entry.Value, err)
			}
		}
		if ac.RegisterDocFragmentDir != nil {
			abs, err := filepath.Abs(fragments)
			if err != nil {
				return fmt.Errorf("resolving %s fragments: %w", entry.Value, err)
			}
			ac.RegisterDocFragmentDir(abs)
		}
		return nil
	}
	return t
}
