package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/stackcraft-dev/stackcraft/internal/compose"
	"github.com/stackcraft-dev/stackcraft/internal/scaffold"
)

var (
	agentsRender bool
	agentsOutput string
	agentsParams []string
)

func init() {
	agentsMergeCmd.Flags().BoolVar(&agentsRender, "render", false, "Render the merged document for the terminal")
	agentsMergeCmd.Flags().StringVarP(&agentsOutput, "output", "o", "", "Write the merged document to a file")
	agentsMergeCmd.Flags().StringArrayVar(&agentsParams, "param", nil, "Fill a placeholder, as key=value")
	agentsCmd.AddCommand(agentsMergeCmd)
	rootCmd.AddCommand(agentsCmd)
}

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Work with AGENTS.md fragments",
}

var agentsMergeCmd = &cobra.Command{
	Use:   "merge <file...>",
	Short: "Merge AGENTS.md fragments into one document",
	Long: `Merge Markdown fragments the way the create flow builds AGENTS.md.

Sections are keyed by heading level and title. Each section keeps the position
of its first appearance, and identical bodies are written once. Missing files
are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAgentsMerge,
}

func runAgentsMerge(cmd *cobra.Command, args []string) error {
	values, err := parsePairs("--param", agentsParams)
	if err != nil {
		return err
	}

	var fragments []string
	for _, path := range args {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("fragment not found; skipping", "path", path)
			continue
		}
		if err != nil {
			return fmt.Errorf("reading fragment: %w", err)
		}
		fragments = append(fragments, string(data))
	}
	if len(fragments) == 0 {
		return fmt.Errorf("none of the %d fragment files exist", len(args))
	}

	merged := scaffold.ReplacePlaceholders(compose.Merge(fragments), values)

	if agentsOutput != "" {
		if err := os.WriteFile(agentsOutput, []byte(merged), 0o644); err != nil {
			return fmt.Errorf("writing output to %s: %w", agentsOutput, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d fragments to %s\n", len(fragments), agentsOutput)
		return nil
	}

	if agentsRender {
		rendered, err := renderMarkdown(merged)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), merged)
	return nil
}

func renderMarkdown(text string) (string, error) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
