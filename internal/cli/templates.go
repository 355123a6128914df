package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stackcraft-dev/stackcraft/internal/config"
	"github.com/stackcraft-dev/stackcraft/internal/extension"
)

var templatesJSON bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates and tools",
	Long: `List the templates the create flow can use and the tools it can add.

Templates come from the built-in set, or from the directory named by
--templates-dir or the templates_dir config key. Extra tools come from the
tools file named by --tools-file or the tools_file config key.`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Output in JSON format")
	templatesCmd.Flags().StringVar(&createTemplatesDir, "templates-dir", "", "Directory of template-* overlays")
	templatesCmd.Flags().StringVar(&createToolsFile, "tools-file", "", "YAML file declaring extra tools")
	rootCmd.AddCommand(templatesCmd)
}

type templatesListing struct {
	Source    string             `json:"source"`
	Templates []listingEntry     `json:"templates"`
	Tools     []extension.Option `json:"tools"`
}

type listingEntry struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

func runTemplates(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog(firstNonEmpty(createTemplatesDir, config.Get(config.KeyTemplatesDir)))
	if err != nil {
		return err
	}
	templates, err := catalog.Templates()
	if err != nil {
		return err
	}

	var external []extension.Tool
	if path := firstNonEmpty(createToolsFile, config.Get(config.KeyToolsFile)); path != "" {
		if external, err = extension.LoadFile(path); err != nil {
			return err
		}
	}

	listing := templatesListing{Source: catalog.Origin, Tools: toolOptions(external)}
	for _, t := range templates {
		listing.Templates = append(listing.Templates, listingEntry{Name: t.Name, Label: t.Label})
	}

	out := cmd.OutOrStdout()
	if templatesJSON {
		data, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Templates (%s):\n", listing.Source)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, t := range listing.Templates {
		fmt.Fprintf(w, "  %s\t%s\n", t.Name, t.Label)
	}
	w.Flush()

	fmt.Fprintln(out, "\nTools:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, t := range listing.Tools {
		fmt.Fprintf(w, "  %s\t%s\n", t.Value, t.Label)
	}
	return w.Flush()
}
