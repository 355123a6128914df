package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Built-in tool names.
const (
	ToolESLint   = "eslint"
	ToolPrettier = "prettier"
	ToolBiome    = "biome"
)

// BuiltinTool is a lint or format configuration shipped as an overlay.
type BuiltinTool struct {
	Name  string
	Label string

	// Variants means the overlay holds one sub-overlay per template family,
	// chosen through a VariantFunc.
	Variants bool

	// Renames are applied in the project after the overlay is copied,
	// mapping the copied name to the final one.
	Renames map[string]string
}

// VariantFunc picks the sub-overlay of a variant tool for a template. An empty
// result means the tool does not apply to that template.
type VariantFunc func(templateName string) string

var builtinTools = []BuiltinTool{
	{Name: ToolESLint, Label: "Add ESLint for code linting", Variants: true},
	{Name: ToolPrettier, Label: "Add Prettier for code formatting"},
	{
		Name:    ToolBiome,
		Label:   "Add Biome for code linting and formatting",
		Renames: map[string]string{"biome.json.template": "biome.json"},
	},
}

// BuiltinTools returns the built-in tools in listing order.
func BuiltinTools() []BuiltinTool {
	out := make([]BuiltinTool, len(builtinTools))
	copy(out, builtinTools)
	return out
}

// LookupTool returns the built-in tool with the given name.
func LookupTool(name string) (BuiltinTool, bool) {
	for _, t := range builtinTools {
		if t.Name == name {
			return t, true
		}
	}
	return BuiltinTool{}, false
}

// IsBuiltinTool reports whether name is a built-in tool.
func IsBuiltinTool(name string) bool {
	_, ok := LookupTool(name)
	return ok
}

// DefaultESLintVariant maps the embedded templates to their ESLint
// sub-overlay.
func DefaultESLintVariant(templateName string) string {
	switch templateName {
	case "vanilla":
		return "vanilla-js"
	case "react":
		return "react-js"
	default:
		return ""
	}
}

// ApplyRenames renames the tool's copied files inside dir. Files the overlay
// did not provide are ignored.
func (t BuiltinTool) ApplyRenames(dir string) error {
	for from, to := range t.Renames {
		src := filepath.Join(dir, from)
		if err := os.Rename(src, filepath.Join(dir, to)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("renaming %s to %s: %w", from, to, err)
		}
	}
	return nil
}
