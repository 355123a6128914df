package integrations

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/stackcraft-dev/stackcraft/internal/platform"
)

// ToolName identifies a supported AI tool integration.
type ToolName string

const (
	ClaudeCode ToolName = "claude-code"
	Copilot    ToolName = "copilot"
	Augment    ToolName = "augment"
	OpenCode   ToolName = "opencode"
)

// instructionFiles maps each tool to the project file it reads. An empty
// path means the tool reads AGENTS.md itself.
var instructionFiles = map[ToolName]string{
	ClaudeCode: "CLAUDE.md",
	Copilot:    filepath.Join(".github", "copilot-instructions.md"),
	Augment:    ".augment-guidelines",
	OpenCode:   "",
}

// AllTools returns all supported tool names.
func AllTools() []ToolName {
	return []ToolName{ClaudeCode, Copilot, Augment, OpenCode}
}

// ParseToolName converts a string to a ToolName, returning false if invalid.
func ParseToolName(s string) (ToolName, bool) {
	switch s {
	case "claude-code":
		return ClaudeCode, true
	case "copilot":
		return Copilot, true
	case "augment":
		return Augment, true
	case "opencode":
		return OpenCode, true
	default:
		return "", false
	}
}

// ParseToolNames parses a list of names, rejecting unknown ones.
func ParseToolNames(names []string) ([]ToolName, error) {
	var tools []ToolName
	for _, s := range names {
		name, ok := ParseToolName(s)
		if !ok {
			valid := make([]string, 0, len(AllTools()))
			for _, t := range AllTools() {
				valid = append(valid, string(t))
			}
			return nil, fmt.Errorf("unknown AI tool %q (supported: %s)", s, strings.Join(valid, ", "))
		}
		tools = append(tools, name)
	}
	return tools, nil
}

// InstructionsFile returns the file tool reads, relative to the project root.
func InstructionsFile(tool ToolName) string {
	return instructionFiles[tool]
}

// Link statuses.
const (
	StatusLinked = "linked" // symlink created
	StatusCopied = "copied" // symlinks unavailable; content copied
	StatusNative = "native" // the tool reads AGENTS.md directly
	StatusExists = "exists" // a file is already there; left untouched
)

// LinkResult reports what LinkInstructions did for one tool.
type LinkResult struct {
	Tool   ToolName
	Path   string // relative to the project root; empty for StatusNative
	Status string
}

// LinkInstructions points each tool's instruction file in projectDir at
// agentsFile, which must sit in projectDir. Existing files are never
// replaced.
func LinkInstructions(projectDir, agentsFile string, tools []ToolName) ([]LinkResult, error) {
	var results []LinkResult
	for _, tool := range tools {
		rel, ok := instructionFiles[tool]
		if !ok {
			return results, fmt.Errorf("unknown AI tool %q", tool)
		}
		if rel == "" {
			results = append(results, LinkResult{Tool: tool, Status: StatusNative})
			continue
		}

		link := filepath.Join(projectDir, rel)
		if _, err := os.Lstat(link); err == nil {
			results = append(results, LinkResult{Tool: tool, Path: rel, Status: StatusExists})
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return results, fmt.Errorf("checking %s: %w", rel, err)
		}

		target, err := filepath.Rel(filepath.Dir(link), filepath.Join(projectDir, agentsFile))
		if err != nil {
			return results, fmt.Errorf("resolving link target for %s: %w", rel, err)
		}
		copied, err := platform.LinkFile(target, link)
		if err != nil {
			return results, fmt.Errorf("linking %s: %w", rel, err)
		}

		status := StatusLinked
		if copied {
			status = StatusCopied
		}
		results = append(results, LinkResult{Tool: tool, Path: rel, Status: status})
	}
	return results, nil
}
