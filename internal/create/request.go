package create

import (
	"errors"
	"strings"

	"github.com/stackcraft-dev/stackcraft/internal/integrations"
	"github.com/stackcraft-dev/stackcraft/internal/pkgjson"
)

// ErrCancelled is returned when the user declines to continue. Callers
// treat it as a clean exit.
var ErrCancelled = errors.New("operation cancelled")

// Request is the resolved input of one run.
type Request struct {
	// TargetDir is the project path as typed; it is normalized before use.
	TargetDir    string
	TemplateName string

	// Tools are built-in tool names or external tool values, in the order
	// they are applied. Comma-separated entries are split.
	Tools []string

	// PackageName overrides the name derived from TargetDir.
	PackageName string
	Version     pkgjson.Version

	// Override writes into a non-empty destination without asking.
	Override bool

	// Skip lists extra entry names left out of every layer.
	Skip []string

	// Placeholders add to or replace the default placeholder values.
	Placeholders map[string]string

	// NextSteps replaces the default next-step list when non-empty.
	NextSteps []string

	// AILinks are the AI tools whose instruction file is linked to the
	// written AGENTS.md.
	AILinks []integrations.ToolName
}

// Result describes a completed run.
type Result struct {
	Dir            string // absolute destination
	PackageName    string
	PackageManager string
	Files          []string // relative to Dir, first-write order
	AgentsWritten  bool
	Links          []integrations.LinkResult
	NextSteps      []string
}

// NormalizeTools splits comma-separated entries, trims them and drops empty
// ones.
func NormalizeTools(tools []string) []string {
	var out []string
	for _, entry := range tools {
		for _, name := range strings.Split(entry, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// DefaultNextSteps returns the guidance printed after a run.
func DefaultNextSteps(dir, packageManager string) []string {
	return []string{
		"cd " + dir,
		"git init (optional)",
		packageManager + " install",
		packageManager + " run dev",
	}
}
