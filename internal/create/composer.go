package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/stackcraft-dev/stackcraft/internal/branding"
	"github.com/stackcraft-dev/stackcraft/internal/compose"
	"github.com/stackcraft-dev/stackcraft/internal/extension"
	"github.com/stackcraft-dev/stackcraft/internal/integrations"
	"github.com/stackcraft-dev/stackcraft/internal/naming"
	"github.com/stackcraft-dev/stackcraft/internal/pkgjson"
	"github.com/stackcraft-dev/stackcraft/internal/registry"
	"github.com/stackcraft-dev/stackcraft/internal/runtime"
	"github.com/stackcraft-dev/stackcraft/internal/scaffold"
)

// CommandRunner runs an external tool command in dir and reports its exit
// code.
type CommandRunner interface {
	Run(ctx context.Context, command, dir string) (int, error)
}

// Composer runs the create flow against a catalog.
type Composer struct {
	Catalog       *registry.Catalog
	ExternalTools []extension.Tool

	// ESLintVariant picks the ESLint sub-overlay for a template. Nil uses
	// registry.DefaultESLintVariant.
	ESLintVariant registry.VariantFunc

	// Confirm is asked before writing into a non-empty destination. Nil,
	// or a false answer, cancels the run.
	Confirm func(dir string) (bool, error)

	// Runner defaults to a runtime.Runner on the process's streams.
	Runner CommandRunner

	// Getenv and Cwd default to os.Getenv and the working directory.
	Getenv func(string) string
	Cwd    string

	// Logger defaults to a discarding logger.
	Logger *log.Logger
}

// run holds the state of one invocation.
type run struct {
	c         *Composer
	req       Request
	dest      string
	pm        runtime.PackageManager
	values    map[string]string
	locations []compose.Location
	files     []string
	written   map[string]bool
	logger    *log.Logger
}

// Run composes the project described by req.
func (c *Composer) Run(ctx context.Context, req Request) (*Result, error) {
	if c.Catalog == nil {
		return nil, errors.New("create: no template catalog")
	}
	if req.TargetDir == "" {
		return nil, errors.New("target directory is required")
	}

	templateDir, err := c.Catalog.TemplateDir(req.TemplateName)
	if err != nil {
		return nil, err
	}

	target := naming.Normalize(req.TargetDir)
	if target.Dir == "" {
		return nil, fmt.Errorf("target directory %q has no name", req.TargetDir)
	}
	cwd, err := c.cwd()
	if err != nil {
		return nil, err
	}
	dest := target.Dir
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(cwd, dest)
	}

	packageName := target.PackageName
	if req.PackageName != "" {
		packageName = req.PackageName
	}
	if packageName == pkgjson.DirNameSentinel {
		packageName = filepath.Base(dest)
	}

	r := &run{
		c:       c,
		req:     req,
		dest:    dest,
		pm:      runtime.DetectPackageManager(c.getenv()),
		written: make(map[string]bool),
		logger:  c.logger(),
	}
	r.values = map[string]string{
		"packageName":    packageName,
		"templateName":   req.TemplateName,
		"packageManager": r.pm.Name,
	}
	for k, v := range req.Placeholders {
		r.values[k] = v
	}

	if req.Version.Range != "" {
		if err := pkgjson.CheckVersion(req.Version.Range); err != nil {
			r.logger.Warn("dependency version is not semver; writing it as given", "version", req.Version.Range)
		}
	}

	if err := r.guard(); err != nil {
		return nil, err
	}

	r.logger.Debug("creating project", "dir", dest, "template", req.TemplateName, "package", packageName)

	if err := r.layer(registry.CommonOverlay, scaffold.Options{}); err != nil {
		return nil, err
	}
	if err := r.layer(templateDir, scaffold.Options{PackageName: packageName}); err != nil {
		return nil, err
	}

	for _, name := range NormalizeTools(req.Tools) {
		if err := r.tool(ctx, name); err != nil {
			return nil, err
		}
	}

	agentsWritten, err := r.writeAgents()
	if err != nil {
		return nil, err
	}

	var links []integrations.LinkResult
	if agentsWritten && len(req.AILinks) > 0 {
		links, err = integrations.LinkInstructions(dest, branding.AgentsFile(), req.AILinks)
		if err != nil {
			return nil, err
		}
		for _, l := range links {
			r.logger.Debug("AI tool instructions", "tool", l.Tool, "path", l.Path, "status", l.Status)
		}
	}

	steps := req.NextSteps
	if len(steps) == 0 {
		steps = DefaultNextSteps(target.Dir, r.pm.Name)
	}

	return &Result{
		Dir:            dest,
		PackageName:    packageName,
		PackageManager: r.pm.Name,
		Files:          r.files,
		AgentsWritten:  agentsWritten,
		Links:          links,
		NextSteps:      steps,
	}, nil
}

// guard asks before writing into a destination that already has content.
func (r *run) guard() error {
	if r.req.Override {
		return nil
	}
	empty, err := isEmptyDir(r.dest)
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if r.c.Confirm == nil {
		return ErrCancelled
	}
	ok, err := r.c.Confirm(r.dest)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}

// layer copies one catalog overlay onto the destination and registers it as
// a fragment location.
func (r *run) layer(dir string, opts scaffold.Options) error {
	opts.Skip = r.req.Skip
	opts.Version = r.req.Version
	opts.Placeholders = r.values

	res, err := scaffold.CopyTree(r.c.Catalog.FS, dir, r.dest, opts)
	if res != nil {
		r.record(res.Files)
	}
	if err != nil {
		return fmt.Errorf("applying %s: %w", dir, err)
	}
	r.logger.Debug("applied overlay", "overlay", dir, "files", len(res.Files))

	r.locations = append(r.locations, compose.Location{FS: r.c.Catalog.FS, Dir: dir})
	return nil
}

// tool applies one selected tool. External tools take precedence over
// built-ins of the same name.
func (r *run) tool(ctx context.Context, name string) error {
	if ext, ok := extension.Find(r.c.ExternalTools, name); ok {
		return r.external(ctx, ext)
	}

	builtin, ok := registry.LookupTool(name)
	if !ok {
		r.logger.Warn("unknown tool; skipping", "tool", name)
		return nil
	}

	dir := registry.OverlayDir(builtin.Name)
	if builtin.Variants {
		variant := r.variant(r.req.TemplateName)
		if variant == "" {
			r.logger.Debug("tool has no variant for template; skipping", "tool", name, "template", r.req.TemplateName)
			return nil
		}
		dir = path.Join(dir, variant)
	}
	if !r.c.Catalog.HasDir(dir) {
		r.logger.Warn("tool overlay not found in catalog; skipping", "tool", name, "overlay", dir, "catalog", r.c.Catalog.Origin)
		return nil
	}

	if err := r.layer(dir, scaffold.Options{MergePackageJSON: true}); err != nil {
		return err
	}
	return builtin.ApplyRenames(r.dest)
}

func (r *run) external(ctx context.Context, tool extension.Tool) error {
	if tool.Action != nil {
		r.logger.Debug("running tool action", "tool", tool.Value)
		err := tool.Action(ctx, extension.ActionContext{
			TemplateName: r.req.TemplateName,
			DistFolder:   r.dest,
			RegisterDocFragmentDir: func(dir string) {
				r.locations = append(r.locations, compose.Location{FS: os.DirFS(dir), Dir: "."})
			},
		})
		if err != nil {
			return fmt.Errorf("tool %s: %w", tool.Value, err)
		}
	}

	if tool.Command != "" {
		command := runtime.RewriteCreateCommand(tool.Command, r.pm)
		r.logger.Debug("running tool command", "tool", tool.Value, "command", command)
		code, err := r.runner().Run(ctx, command, r.dest)
		switch {
		case err != nil:
			r.logger.Warn("tool command failed to start", "tool", tool.Value, "err", err)
		case code != 0:
			r.logger.Warn("tool command exited with an error", "tool", tool.Value, "code", code)
		}
	}
	return nil
}

// writeAgents merges every fragment found and writes the result. Nothing is
// written when no layer contributed a fragment.
func (r *run) writeAgents() (bool, error) {
	name := branding.AgentsFile()
	fragments, err := compose.ReadFragments(r.locations, name)
	if err != nil {
		return false, err
	}
	if len(fragments) == 0 {
		return false, nil
	}
	r.logger.Debug("merging fragments", "count", len(fragments))

	content := scaffold.ReplacePlaceholders(compose.Merge(fragments), r.values)
	if err := os.WriteFile(filepath.Join(r.dest, name), []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", name, err)
	}
	r.record([]string{name})
	return true, nil
}

func (r *run) record(files []string) {
	for _, f := range files {
		if !r.written[f] {
			r.written[f] = true
			r.files = append(r.files, f)
		}
	}
}

func (r *run) variant(templateName string) string {
	if r.c.ESLintVariant != nil {
		return r.c.ESLintVariant(templateName)
	}
	return registry.DefaultESLintVariant(templateName)
}

func (r *run) runner() CommandRunner {
	if r.c.Runner != nil {
		return r.c.Runner
	}
	return &runtime.Runner{}
}

func (c *Composer) getenv() func(string) string {
	if c.Getenv != nil {
		return c.Getenv
	}
	return os.Getenv
}

func (c *Composer) cwd() (string, error) {
	if c.Cwd != "" {
		return c.Cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return cwd, nil
}

func (c *Composer) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard)
}

// isEmptyDir reports whether dir is missing or holds nothing but a .git
// entry.
func isEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.Name() != ".git" {
			return false, nil
		}
	}
	return true, nil
}
