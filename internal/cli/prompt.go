package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/stackcraft-dev/stackcraft/internal/create"
)

// prompter asks questions with numbered menus. Typing "q" or closing input
// cancels with create.ErrCancelled.
type prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{reader: bufio.NewReader(r), w: w}
}

// isInteractive reports whether r is a terminal.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", create.ErrCancelled
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "q" {
		return "", create.ErrCancelled
	}
	return line, nil
}

// text asks for a free-form value; an empty answer takes def.
func (p *prompter) text(question, def string) (string, error) {
	fmt.Fprintf(p.w, "%s [%s]: ", question, def)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// selectFromList presents a numbered list and returns the selected index.
func (p *prompter) selectFromList(question string, items []string) (int, error) {
	fmt.Fprintf(p.w, "\n%s\n", question)
	for i, item := range items {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(items))

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return num - 1, nil
}

// selectMany presents a numbered list and returns the indexes picked as a
// comma-separated list, in the order typed. An empty answer picks nothing.
func (p *prompter) selectMany(question string, items []string) ([]int, error) {
	fmt.Fprintf(p.w, "\n%s\n", question)
	for i, item := range items {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprint(p.w, "Enter numbers separated by commas, or leave empty: ")

	line, err := p.readLine()
	if err != nil {
		return nil, err
	}

	var picked []int
	seen := make(map[int]bool)
	for _, field := range create.NormalizeTools([]string{line}) {
		num, err := strconv.Atoi(field)
		if err != nil || num < 1 || num > len(items) {
			return nil, fmt.Errorf("invalid selection %q: choose 1-%d", field, len(items))
		}
		if !seen[num] {
			seen[num] = true
			picked = append(picked, num-1)
		}
	}
	return picked, nil
}

// confirm asks a yes/no question that defaults to no.
func (p *prompter) confirm(question string) (bool, error) {
	fmt.Fprintf(p.w, "%s [y/N]: ", question)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
