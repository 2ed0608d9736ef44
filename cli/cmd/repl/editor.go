package repl

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/seedmap/almanac"
	"github.com/ardnew/seedmap/log"
	"github.com/ardnew/seedmap/token"
)

const defaultEditor = "vi"

// editCommand is a [tea.ExecCommand] that opens the almanac in $EDITOR and
// parses the result, offering to edit again while it does not parse.
// newAlmanac stays nil when the file is saved empty.
type editCommand struct {
	almanac    *almanac.Almanac
	ctxFunc    func() context.Context
	newAlmanac *almanac.Almanac
	logger     log.Logger
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

func (c *editCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run edits until the almanac parses, the file is emptied, or the user
// declines to edit again, which returns [ErrEditDeclined].
func (c *editCommand) Run() error {
	ctx := c.ctxFunc()

	path, err := c.writeTemp()
	if err != nil {
		return err
	}
	defer os.Remove(path)

	for attempt := 1; ; attempt++ {
		if err := c.runEditor(ctx, path); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}

		edited, err := c.parse(ctx, data)

		c.logger.TraceContext(ctx, "repl edit parsed",
			slog.Int("attempt", attempt),
			slog.Bool("ok", err == nil),
		)

		if err == nil {
			c.newAlmanac = edited

			return nil
		}

		fmt.Fprintf(c.stderr, "\nParse error: %s\n", err)

		if !c.confirm("Re-edit? [Y/n] ") {
			return ErrEditDeclined
		}
	}
}

// writeTemp writes the almanac in its native format to a new private file.
func (c *editCommand) writeTemp() (string, error) {
	f, err := os.CreateTemp("", "seedmap-repl-*.txt")
	if err != nil {
		return "", err
	}

	if err := c.almanac.Format(f); err != nil {
		f.Close()
		os.Remove(f.Name())

		return "", fmt.Errorf("format almanac: %w", err)
	}

	return f.Name(), f.Close()
}

// parse accepts data only if it is an almanac with at least one seed.
func (c *editCommand) parse(ctx context.Context, data []byte) (*almanac.Almanac, error) {
	lines, err := token.ScanLines(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	a, err := almanac.Parse(ctx, lines, almanac.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}

	if _, err := a.Lowest(); err != nil {
		return nil, err
	}

	return a, nil
}

// confirm asks prompt and reports whether the answer is not "n" or "no".
func (c *editCommand) confirm(prompt string) bool {
	fmt.Fprint(c.stdout, prompt)

	scanner := bufio.NewScanner(c.stdin)
	if !scanner.Scan() {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "n", "no":
		return false
	}

	return true
}

func (c *editCommand) runEditor(ctx context.Context, path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = c.stdin, c.stdout, c.stderr

	return cmd.Run()
}
