package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Parse validates data against the tools schema and decodes it. Schema
// violations are reported as an *InvalidError.
func Parse(data []byte) (*ToolsFile, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Issues: result.Issues}
	}

	var f ToolsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing tools file: %w", err)
	}
	return &f, nil
}

// ParseFile reads and parses a tools file. Relative Overlay and Fragments
// paths are resolved against the file's directory.
func ParseFile(path string) (*ToolsFile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i := range f.Tools {
		f.Tools[i].Overlay = resolve(base, f.Tools[i].Overlay)
		f.Tools[i].Fragments = resolve(base, f.Tools[i].Fragments)
	}
	return f, nil
}

// InvalidError reports a tools file that does not match the schema.
type InvalidError struct {
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return "invalid tools file: " + strings.Join(parts, "; ")
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
