package manifest

// Tool orders.
const (
	OrderPre  = "pre"
	OrderPost = "post"
)

// ToolsFile is the root of a tools file.
type ToolsFile struct {
	Tools []ToolEntry `yaml:"tools" json:"tools"`
}

// ToolEntry declares one external tool.
type ToolEntry struct {
	Value   string `yaml:"value" json:"value"`
	Label   string `yaml:"label" json:"label"`
	Order   string `yaml:"order,omitempty" json:"order,omitempty"`
	Command string `yaml:"command,omitempty" json:"command,omitempty"`

	// Overlay is a directory merged into the project, relative to the
	// tools file.
	Overlay string `yaml:"overlay,omitempty" json:"overlay,omitempty"`

	// Fragments is a directory holding an AGENTS.md fragment, relative to
	// the tools file. Defaults to Overlay.
	Fragments string `yaml:"fragments,omitempty" json:"fragments,omitempty"`
}
