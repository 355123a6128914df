package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/stackcraft-dev/stackcraft/internal/create"
	"github.com/stackcraft-dev/stackcraft/internal/integrations"
)

var (
	success = color.New(color.FgGreen, color.Bold).SprintFunc()
	failure = color.New(color.FgRed, color.Bold).SprintFunc()
	accent  = color.New(color.FgCyan).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
)

// printReport writes the outcome of a create run.
func printReport(w io.Writer, res *create.Result, templateName string, listFiles bool) {
	fmt.Fprintf(w, "\n%s %s from the %s template in %s\n",
		success("Created"), accent(res.PackageName), accent(templateName), res.Dir)

	if listFiles {
		for _, f := range res.Files {
			fmt.Fprintf(w, "  %s\n", faint(f))
		}
	}
	if !res.AgentsWritten {
		fmt.Fprintln(w, faint("No AGENTS.md fragments found; AGENTS.md was not written."))
	}
	for _, l := range res.Links {
		switch l.Status {
		case integrations.StatusNative:
			fmt.Fprintf(w, "  %s reads AGENTS.md directly\n", accent(l.Tool))
		case integrations.StatusExists:
			fmt.Fprintf(w, "  %s %s already exists; left unchanged\n", accent(l.Tool), l.Path)
		default:
			fmt.Fprintf(w, "  %s %s -> AGENTS.md (%s)\n", accent(l.Tool), l.Path, l.Status)
		}
	}

	fmt.Fprintln(w, "\nNext steps:")
	for i, step := range res.NextSteps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}
