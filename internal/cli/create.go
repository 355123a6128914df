package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackcraft-dev/stackcraft/internal/config"
	"github.com/stackcraft-dev/stackcraft/internal/create"
	"github.com/stackcraft-dev/stackcraft/internal/extension"
	"github.com/stackcraft-dev/stackcraft/internal/integrations"
	"github.com/stackcraft-dev/stackcraft/internal/pkgjson"
	"github.com/stackcraft-dev/stackcraft/internal/registry"
	"github.com/stackcraft-dev/stackcraft/internal/runtime"
)

const defaultProjectName = "stackcraft-project"

var (
	createTemplate     string
	createTools        []string
	createOverride     bool
	createPackageName  string
	createDepVersion   string
	createPins         []string
	createParams       []string
	createSkip         []string
	createTemplatesDir string
	createToolsFile    string
	createLinkAI       []string
)

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&createTemplate, "template", "t", "", "Template to create the project from")
	f.StringArrayVar(&createTools, "tools", nil, "Tools to add, comma-separated or repeated (e.g. eslint,prettier)")
	f.BoolVar(&createOverride, "override", false, "Write into a non-empty directory without asking")
	f.StringVar(&createPackageName, "package-name", "", "package.json name (default: derived from the directory)")
	f.StringVar(&createDepVersion, "dep-version", "", "Version written wherever a template depends on workspace:*")
	f.StringArrayVar(&createPins, "pin", nil, "Pin a dependency to an exact version, as name=version")
	f.StringArrayVar(&createParams, "param", nil, "Set an AGENTS.md placeholder, as key=value")
	f.StringArrayVar(&createSkip, "skip", nil, "Leave files or directories with this name out of the project")
	f.StringVar(&createTemplatesDir, "templates-dir", "", "Directory of template-* overlays (default: built-in templates)")
	f.StringVar(&createToolsFile, "tools-file", "", "YAML file declaring extra tools")
	f.StringArrayVar(&createLinkAI, "link-ai", nil, "Link an AI tool's instruction file to AGENTS.md (claude-code, copilot, augment, opencode)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog(firstNonEmpty(createTemplatesDir, config.Get(config.KeyTemplatesDir)))
	if err != nil {
		return err
	}

	var external []extension.Tool
	if path := firstNonEmpty(createToolsFile, config.Get(config.KeyToolsFile)); path != "" {
		if external, err = extension.LoadFile(path); err != nil {
			return err
		}
		logger.Debug("loaded tools file", "path", path, "tools", len(external))
	}

	interactive := isInteractive(cmd.InOrStdin())
	p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

	req := create.Request{
		TemplateName: createTemplate,
		Tools:        createTools,
		PackageName:  createPackageName,
		Override:     createOverride,
		Skip:         createSkip,
		NextSteps:    config.GetStrings(config.KeyNextSteps),
	}

	if len(args) > 0 {
		req.TargetDir = args[0]
	}
	if strings.TrimSpace(req.TargetDir) == "" {
		if !interactive {
			return fmt.Errorf("project directory is required")
		}
		if req.TargetDir, err = p.text("Project name or path", defaultProjectName); err != nil {
			return err
		}
	}

	if req.TemplateName == "" {
		if !interactive {
			return fmt.Errorf("--template is required when input is not a terminal")
		}
		if req.TemplateName, err = selectTemplate(p, catalog); err != nil {
			return err
		}
	}

	if !cmd.Flags().Changed("tools") && interactive {
		if req.Tools, err = selectTools(p, external); err != nil {
			return err
		}
	}

	if req.Version, err = parseVersion(firstNonEmpty(createDepVersion, config.Get(config.KeyDependencyVersion)), createPins); err != nil {
		return err
	}
	if req.Placeholders, err = parsePairs("--param", createParams); err != nil {
		return err
	}
	if req.AILinks, err = integrations.ParseToolNames(create.NormalizeTools(createLinkAI)); err != nil {
		return err
	}

	composer := &create.Composer{
		Catalog:       catalog,
		ExternalTools: external,
		Runner: &runtime.Runner{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
		Logger: logger,
	}
	if interactive {
		composer.Confirm = func(dir string) (bool, error) {
			return p.confirm(fmt.Sprintf("%s is not empty. Write into it anyway?", dir))
		}
	} else {
		composer.Confirm = func(dir string) (bool, error) {
			return false, fmt.Errorf("%s is not empty; pass --override to write into it", dir)
		}
	}

	res, err := composer.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), res, req.TemplateName, verbose)
	return nil
}

func openCatalog(dir string) (*registry.Catalog, error) {
	if dir == "" {
		return registry.Embedded(), nil
	}
	return registry.Open(dir)
}

func selectTemplate(p *prompter, catalog *registry.Catalog) (string, error) {
	templates, err := catalog.Templates()
	if err != nil {
		return "", err
	}
	if len(templates) == 0 {
		return "", fmt.Errorf("no templates found in %s", catalog.Origin)
	}

	labels := make([]string, len(templates))
	for i, t := range templates {
		labels[i] = t.Label
	}
	idx, err := p.selectFromList("Select template:", labels)
	if err != nil {
		return "", err
	}
	return templates[idx].Name, nil
}

func selectTools(p *prompter, external []extension.Tool) ([]string, error) {
	options := toolOptions(external)
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.Label
	}

	picked, err := p.selectMany("Select additional tools:", labels)
	if err != nil {
		return nil, err
	}
	tools := make([]string, len(picked))
	for i, idx := range picked {
		tools[i] = options[idx].Value
	}
	return tools, nil
}

// toolOptions lists every selectable tool in display order.
func toolOptions(external []extension.Tool) []extension.Option {
	var builtins []extension.Option
	for _, t := range registry.BuiltinTools() {
		builtins = append(builtins, extension.Option{Value: t.Name, Label: t.Label})
	}
	return extension.ListOptions(builtins, external)
}

// parseVersion builds the version directive from --dep-version and --pin.
func parseVersion(rangeValue string, pins []string) (pkgjson.Version, error) {
	parsed, err := parsePairs("--pin", pins)
	if err != nil {
		return pkgjson.Version{}, err
	}
	return pkgjson.Version{Range: rangeValue, Pins: parsed}, nil
}

// parsePairs parses repeated key=value flag values.
func parsePairs(flag string, values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid %s value %q: expected key=value", flag, v)
		}
		out[key] = value
	}
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
