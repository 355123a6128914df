package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestEmbeddedTemplates(t *testing.T) {
	c := Embedded()

	got, err := c.Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	want := []Template{
		{Name: "react", Label: "React"},
		{Name: "vanilla", Label: "Vanilla"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Templates mismatch (-want +got):\n%s", diff)
	}

	for _, dir := range []string{CommonOverlay, "template-eslint/react-js", "template-prettier", "template-biome"} {
		if !c.HasDir(dir) {
			t.Errorf("embedded catalog is missing %s", dir)
		}
	}
}

func TestTemplateDir(t *testing.T) {
	c := &Catalog{
		FS: fstest.MapFS{
			"template-react/package.json": {Data: []byte("{}")},
			"template-notes.txt":          {Data: []byte("not a dir")},
		},
		Origin: "/srv/templates",
	}

	dir, err := c.TemplateDir("react")
	if err != nil {
		t.Fatalf("TemplateDir(react): %v", err)
	}
	if dir != "template-react" {
		t.Errorf("dir = %q, want template-react", dir)
	}

	for _, name := range []string{"svelte", "", "notes.txt"} {
		_, err := c.TemplateDir(name)
		var notFound *TemplateNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("TemplateDir(%q) error = %v, want TemplateNotFoundError", name, err)
		}
		if notFound.Name != name {
			t.Errorf("error name = %q, want %q", notFound.Name, name)
		}
	}
}

func TestTemplateNotFoundErrorMessage(t *testing.T) {
	err := &TemplateNotFoundError{Name: "svelte", Dir: "/srv/templates/template-svelte"}
	want := `template "svelte" not found: /srv/templates/template-svelte does not exist`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestTemplatesSkipsCommonAndTools(t *testing.T) {
	c := &Catalog{FS: fstest.MapFS{
		"template-common/README.md":          {Data: []byte("x")},
		"template-eslint/react-js/a.js":      {Data: []byte("x")},
		"template-biome/biome.json.template": {Data: []byte("x")},
		"template-react-ts/package.json":     {Data: []byte("{}")},
		"other/package.json":                 {Data: []byte("{}")},
	}}

	got, err := c.Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	want := []Template{{Name: "react-ts", Label: "React Ts"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Templates mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "template-vue"), 0o755); err != nil {
		t.Fatal(err)
	}

	c, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := c.TemplateDir("vue"); err != nil {
		t.Errorf("TemplateDir(vue): %v", err)
	}

	if _, err := Open(filepath.Join(dir, "missing")); err == nil {
		t.Error("Open on a missing directory should fail")
	}
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(file); err == nil {
		t.Error("Open on a file should fail")
	}
}
