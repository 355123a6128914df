package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupTool(t *testing.T) {
	tests := []struct {
		name     string
		found    bool
		variants bool
	}{
		{"eslint", true, true},
		{"prettier", true, false},
		{"biome", true, false},
		{"stylelint", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, ok := LookupTool(tt.name)
			if ok != tt.found {
				t.Fatalf("LookupTool(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if tool.Variants != tt.variants {
				t.Errorf("Variants = %v, want %v", tool.Variants, tt.variants)
			}
		})
	}
}

func TestBuiltinToolsOrder(t *testing.T) {
	tools := BuiltinTools()
	want := []string{"eslint", "prettier", "biome"}
	if len(tools) != len(want) {
		t.Fatalf("got %d tools, want %d", len(tools), len(want))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("tools[%d] = %q, want %q", i, tools[i].Name, name)
		}
	}

	tools[0].Name = "changed"
	if BuiltinTools()[0].Name != "eslint" {
		t.Error("BuiltinTools must return a copy")
	}
}

func TestDefaultESLintVariant(t *testing.T) {
	tests := map[string]string{
		"vanilla": "vanilla-js",
		"react":   "react-js",
		"svelte":  "",
	}
	for in, want := range tests {
		if got := DefaultESLintVariant(in); got != want {
			t.Errorf("DefaultESLintVariant(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyRenames(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "biome.json.template"), []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	biome, _ := LookupTool(ToolBiome)
	if err := biome.ApplyRenames(dir); err != nil {
		t.Fatalf("ApplyRenames: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "biome.json")); err != nil {
		t.Errorf("biome.json missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "biome.json.template")); !os.IsNotExist(err) {
		t.Errorf("biome.json.template still present")
	}

	// A second run finds nothing to rename.
	if err := biome.ApplyRenames(dir); err != nil {
		t.Errorf("second ApplyRenames: %v", err)
	}
}
