package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/stackcraft-dev/stackcraft/internal/create"
)

func TestPrintReport(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	res := &create.Result{
		Dir:         "/work/my-app",
		PackageName: "my-app",
		Files:       []string{"package.json", "AGENTS.md"},
		NextSteps:   []string{"cd my-app", "npm install"},
	}

	var buf bytes.Buffer
	printReport(&buf, res, "vanilla", true)
	out := buf.String()

	for _, want := range []string{
		"Created my-app from the vanilla template in /work/my-app",
		"  package.json",
		"AGENTS.md was not written",
		"  1. cd my-app\n  2. npm install\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	res.AgentsWritten = true
	printReport(&buf, res, "vanilla", false)
	if strings.Contains(buf.String(), "package.json") || strings.Contains(buf.String(), "not written") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
