package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"github.com/stackcraft-dev/stackcraft/internal/extension"
	"github.com/stackcraft-dev/stackcraft/internal/pkgjson"
)

// executeRoot runs the command tree with args in an isolated home directory.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	createTemplate, createTools, createOverride = "", nil, false
	createPackageName, createDepVersion = "", ""
	createPins, createParams, createSkip = nil, nil, nil
	createTemplatesDir, createToolsFile, createLinkAI = "", "", nil
	agentsRender, agentsOutput, agentsParams = false, "", nil
	templatesJSON, verbose = false, false
	for _, name := range []string{"tools", "template"} {
		if f := rootCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCreateCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-app")

	out, _, err := executeRoot(t, dir,
		"--template", "vanilla",
		"--tools", "eslint,prettier",
		"--dep-version", "1.2.3",
		"--param", "packageManager=pnpm",
		"--link-ai", "claude-code",
	)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, f := range []string{"package.json", "eslint.config.mjs", ".prettierrc", ".gitignore", "AGENTS.md", "CLAUDE.md"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
	doc, err := os.ReadFile(filepath.Join(dir, "AGENTS.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(doc), "`pnpm run lint`") {
		t.Errorf("placeholder param not applied:\n%s", doc)
	}
	if !strings.Contains(out, "Next steps:") || !strings.Contains(out, "git init (optional)") {
		t.Errorf("report missing next steps:\n%s", out)
	}
}

func TestCreateCommand_NonInteractiveErrors(t *testing.T) {
	if _, _, err := executeRoot(t, "--template", "vanilla"); err == nil {
		t.Error("missing directory should fail without a terminal")
	}
	if _, _, err := executeRoot(t, filepath.Join(t.TempDir(), "app")); err == nil {
		t.Error("missing template should fail without a terminal")
	}

	if _, _, err := executeRoot(t, filepath.Join(t.TempDir(), "app"), "--template", "vanilla", "--link-ai", "cursor"); err == nil {
		t.Error("an unknown AI tool should fail")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := executeRoot(t, dir, "--template", "vanilla")
	if err == nil || !strings.Contains(err.Error(), "--override") {
		t.Errorf("non-empty directory error = %v, want a hint about --override", err)
	}
	if _, _, err := executeRoot(t, dir, "--template", "vanilla", "--override"); err != nil {
		t.Errorf("--override: %v", err)
	}
}

func TestTemplatesCommand(t *testing.T) {
	out, _, err := executeRoot(t, "templates")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	for _, want := range []string{"Templates (embedded):", "react", "vanilla", "eslint", "Add Prettier"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAgentsMergeCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.md")
	if err := os.WriteFile(a, []byte("## Tools\n\nX\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("## Tools\n\nY\n\n## Notes\n\n{{ who }}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := executeRoot(t, "agents", "merge", a, filepath.Join(dir, "missing.md"), b, "--param", "who=team")
	if err != nil {
		t.Fatalf("agents merge: %v", err)
	}
	want := "## Tools\n\nX\n\nY\n\n## Notes\n\nteam\n"
	if out != want {
		t.Errorf("output =\n%q\nwant\n%q", out, want)
	}

	if _, _, err := executeRoot(t, "agents", "merge", filepath.Join(dir, "missing.md")); err == nil {
		t.Error("merging only missing files should fail")
	}
}

func TestParsePairs(t *testing.T) {
	got, err := parsePairs("--pin", []string{"react=19.1.0", "@types/react=19.1.2", "empty="})
	if err != nil {
		t.Fatalf("parsePairs: %v", err)
	}
	want := map[string]string{"react": "19.1.0", "@types/react": "19.1.2", "empty": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"react", "=1.0.0"} {
		if _, err := parsePairs("--pin", []string{bad}); err == nil {
			t.Errorf("parsePairs(%q) should fail", bad)
		}
	}

	if got, err := parsePairs("--pin", nil); got != nil || err != nil {
		t.Errorf("no values = %v, %v", got, err)
	}
}

func TestParseVersion(t *testing.T) {
	got, err := parseVersion("1.2.3", []string{"vite=7.1.5"})
	if err != nil {
		t.Fatalf("parseVersion: %v", err)
	}
	want := pkgjson.Version{Range: "1.2.3", Pins: map[string]string{"vite": "7.1.5"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToolOptions(t *testing.T) {
	external := []extension.Tool{
		{Value: "storybook", Label: "Add Storybook", Order: extension.OrderPre},
		{Value: "vitest", Label: "Add Vitest"},
	}
	var values []string
	for _, o := range toolOptions(external) {
		values = append(values, o.Value)
	}
	want := []string{"storybook", "eslint", "prettier", "biome", "vitest"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigureLogger(t *testing.T) {
	if err := configureLogger("info", false); err != nil {
		t.Errorf("info: %v", err)
	}
	if err := configureLogger("", false); err != nil {
		t.Errorf("empty: %v", err)
	}
	if err := configureLogger("loud", false); err == nil {
		t.Error("an unknown level should fail")
	}
	if err := configureLogger("loud", true); err != nil {
		t.Errorf("--verbose ignores the configured level: %v", err)
	}
}
