package extension

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackcraft-dev/stackcraft/internal/manifest"
)

func TestListOptions(t *testing.T) {
	builtins := []Option{
		{Value: "eslint", Label: "ESLint"},
		{Value: "prettier", Label: "Prettier"},
	}
	tools := []Tool{
		{Value: "vitest", Label: "Vitest"},
		{Value: "storybook", Label: "Storybook", Order: OrderPre},
		{Value: "playwright", Label: "Playwright", Order: OrderPost},
		{Value: "husky", Label: "Husky", Order: OrderPre},
	}

	got := ListOptions(builtins, tools)
	var values []string
	for _, o := range got {
		values = append(values, o.Value)
	}
	want := []string{"storybook", "husky", "eslint", "prettier", "vitest", "playwright"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("listing order mismatch (-want +got):\n%s", diff)
	}
}

func TestListOptions_NoTools(t *testing.T) {
	builtins := []Option{{Value: "biome", Label: "Biome"}}
	got := ListOptions(builtins, nil)
	if diff := cmp.Diff(builtins, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	tools := []Tool{{Value: "storybook"}, {Value: "vitest"}}
	if tool, ok := Find(tools, "vitest"); !ok || tool.Value != "vitest" {
		t.Errorf("Find(vitest) = %+v, %v", tool, ok)
	}
	if _, ok := Find(tools, "eslint"); ok {
		t.Error("Find(eslint) should not match")
	}
}

func TestFromEntry_CommandOnly(t *testing.T) {
	tool := FromEntry(manifest.ToolEntry{
		Value:   "storybook",
		Label:   "Add Storybook",
		Order:   "pre",
		Command: "npm create storybook@latest",
	})
	if tool.Action != nil {
		t.Error("a command-only entry should have no action")
	}
	if tool.Command != "npm create storybook@latest" || tool.Order != OrderPre {
		t.Errorf("unexpected tool %+v", tool)
	}
}

func TestFromEntry_OverlayAction(t *testing.T) {
	overlay := t.TempDir()
	writeFile(t, filepath.Join(overlay, "vitest.config.js"), "export default {}\n")
	writeFile(t, filepath.Join(overlay, "AGENTS.md"), "## Tools\n\n### Vitest\n")
	writeFile(t, filepath.Join(overlay, "package.json"), `{"devDependencies":{"vitest":"^3.0.0"}}`)

	dist := t.TempDir()
	writeFile(t, filepath.Join(dist, "package.json"), `{"name":"app","devDependencies":{"vite":"^7.0.0"}}`)

	tool := FromEntry(manifest.ToolEntry{Value: "vitest", Label: "Vitest", Overlay: overlay})
	if tool.Action == nil {
		t.Fatal("expected an action")
	}

	var registered []string
	err := tool.Action(context.Background(), ActionContext{
		TemplateName:           "vanilla",
		DistFolder:             dist,
		RegisterDocFragmentDir: func(dir string) { registered = append(registered, dir) },
	})
	if err != nil {
		t.Fatalf("action: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dist, "vitest.config.js")); err != nil {
		t.Errorf("overlay file not copied: %v", err)
	}
	pkg, err := os.ReadFile(filepath.Join(dist, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	for _, dep := range []string{`"vite"`, `"vitest"`, `"name": "app"`} {
		if !strings.Contains(string(pkg), dep) {
			t.Errorf("package.json missing %s:\n%s", dep, pkg)
		}
	}
	if diff := cmp.Diff([]string{overlay}, registered); diff != "" {
		t.Errorf("registered dirs mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEntry_FragmentsOnly(t *testing.T) {
	fragments := t.TempDir()
	tool := FromEntry(manifest.ToolEntry{Value: "docs", Label: "Docs", Fragments: fragments})

	var registered []string
	err := tool.Action(context.Background(), ActionContext{
		DistFolder:             t.TempDir(),
		RegisterDocFragmentDir: func(dir string) { registered = append(registered, dir) },
	})
	if err != nil {
		t.Fatalf("action: %v", err)
	}
	if diff := cmp.Diff([]string{fragments}, registered); diff != "" {
		t.Errorf("registered dirs mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEntry_MissingOverlay(t *testing.T) {
	tool := FromEntry(manifest.ToolEntry{
		Value:   "ghost",
		Label:   "Ghost",
		Overlay: filepath.Join(t.TempDir(), "missing"),
	})
	err := tool.Action(context.Background(), ActionContext{DistFolder: t.TempDir()})
	if err == nil {
		t.Fatal("expected an error for a missing overlay")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error %q should name the tool", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.yaml")
	writeFile(t, path, `tools:
  - value: storybook
    label: Add Storybook
    order: pre
    command: npm create storybook@latest
  - value: vitest
    label: Add Vitest
    overlay: vitest
`)

	tools, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(tools) != 2 {
		t.Fatalf("got %d tools, want 2", len(tools))
	}
	if tools[0].Action != nil || tools[1].Action == nil {
		t.Errorf("only the overlay tool should carry an action")
	}

	writeFile(t, path, "tools:\n  - value: x\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected a validation error")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
