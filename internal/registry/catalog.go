package registry

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed all:templates
var embedded embed.FS

const (
	overlayPrefix = "template-"

	// CommonOverlay is applied to every project before the template.
	CommonOverlay = overlayPrefix + "common"
)

// Catalog is a set of overlays rooted in an fs.FS.
type Catalog struct {
	FS     fs.FS
	Origin string // shown in messages: "embedded" or the directory path
}

// Template is a selectable project template.
type Template struct {
	Name  string // e.g. "react"
	Label string // e.g. "React"
}

// TemplateNotFoundError is returned when a template has no overlay in the
// catalog.
type TemplateNotFoundError struct {
	Name string
	Dir  string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found: %s does not exist", e.Name, e.Dir)
}

// Embedded returns the catalog compiled into the binary.
func Embedded() *Catalog {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return &Catalog{FS: sub, Origin: "embedded"}
}

// Open returns the catalog stored in dir.
func Open(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates directory %s is not a directory", dir)
	}
	return &Catalog{FS: os.DirFS(dir), Origin: dir}, nil
}

// OverlayDir returns the catalog path of the overlay for name.
func OverlayDir(name string) string {
	return overlayPrefix + name
}

// HasDir reports whether dir exists in the catalog as a directory.
func (c *Catalog) HasDir(dir string) bool {
	info, err := fs.Stat(c.FS, dir)
	return err == nil && info.IsDir()
}

// TemplateDir returns the overlay directory for the named template.
func (c *Catalog) TemplateDir(name string) (string, error) {
	dir := OverlayDir(name)
	if name == "" || !c.HasDir(dir) {
		return "", &TemplateNotFoundError{Name: name, Dir: path.Join(c.Origin, dir)}
	}
	return dir, nil
}

// Templates lists the selectable templates, sorted by name.
func (c *Catalog) Templates() ([]Template, error) {
	entries, err := fs.ReadDir(c.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", c.Origin, err)
	}

	var templates []Template
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), overlayPrefix) {
			continue
		}
		name := strings.TrimPrefix(e.Name(), overlayPrefix)
		if e.Name() == CommonOverlay || IsBuiltinTool(name) {
			continue
		}
		templates = append(templates, Template{Name: name, Label: Label(name)})
	}

	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}

var titleCaser = cases.Title(language.English)

// Label converts a name like "react-ts" to a display label like "React Ts".
func Label(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}
