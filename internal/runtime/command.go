package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Runner executes tool commands.
type Runner struct {
	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env defaults to the process environment.
	Env []string
}

// Run interprets command as a POSIX shell script in dir, blocking until it
// exits. Lists, pipes, redirections and env-prefixed commands behave as in
// sh. A non-zero exit, including 127 for an unknown program, is reported
// through the exit code with a nil error; the error is for commands that
// could not be parsed or interpreted.
func (r *Runner) Run(ctx context.Context, command, dir string) (int, error) {
	if strings.TrimSpace(command) == "" {
		return -1, fmt.Errorf("empty command")
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "command")
	if err != nil {
		return -1, fmt.Errorf("parsing command %q: %w", command, err)
	}

	stdin, stdout, stderr := io.Reader(os.Stdin), io.Writer(os.Stdout), io.Writer(os.Stderr)
	if r.Stdin != nil {
		stdin = r.Stdin
	}
	if r.Stdout != nil {
		stdout = r.Stdout
	}
	if r.Stderr != nil {
		stderr = r.Stderr
	}
	env := r.Env
	if env == nil {
		env = os.Environ()
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(stdin, stdout, stderr),
	)
	if err != nil {
		return -1, fmt.Errorf("creating interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return int(status), nil
		}
		return -1, fmt.Errorf("running %q: %w", command, err)
	}
	return 0, nil
}
