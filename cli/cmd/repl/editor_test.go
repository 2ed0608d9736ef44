package repl

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ardnew/seedmap/log"
)

// editorScript installs a shell script as $EDITOR. The script receives the
// file to edit as $1.
func editorScript(t *testing.T, body string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("editor scripts need a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "editor.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700); err != nil {
		t.Fatal(err)
	}

	t.Setenv("EDITOR", path)
}

func runEdit(t *testing.T, stdin string) (*editCommand, string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := &editCommand{
		almanac: testAlmanac(t),
		ctxFunc: context.Background,
		logger:  log.Logger{},
	}
	cmd.SetStdin(strings.NewReader(stdin))
	cmd.SetStdout(&out)
	cmd.SetStderr(&out)

	err := cmd.Run()

	return cmd, out.String(), err
}

func TestEditCommand_Unchanged(t *testing.T) {
	editorScript(t, "exit 0")

	cmd, _, err := runEdit(t, "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if cmd.newAlmanac == nil {
		t.Fatal("Run() produced no almanac")
	}

	if got, want := cmd.newAlmanac.Seeds(), cmd.almanac.Seeds(); len(got) != len(want) {
		t.Errorf("seeds = %v, want %v", got, want)
	}
}

func TestEditCommand_Emptied(t *testing.T) {
	editorScript(t, `: > "$1"`)

	cmd, _, err := runEdit(t, "")
	if err != nil || cmd.newAlmanac != nil {
		t.Errorf("Run() = %v, %v; want cancelled edit", cmd.newAlmanac, err)
	}
}

func TestEditCommand_Declined(t *testing.T) {
	editorScript(t, `echo "seeds: x" > "$1"`)

	_, out, err := runEdit(t, "n\n")
	if !errors.Is(err, ErrEditDeclined) {
		t.Errorf("Run() error = %v, want %v", err, ErrEditDeclined)
	}

	if !strings.Contains(out, "Parse error") || !strings.Contains(out, "Re-edit?") {
		t.Errorf("output = %q", out)
	}
}

func TestEditCommand_Retry(t *testing.T) {
	// The first run breaks the file, the second restores a valid almanac.
	marker := filepath.Join(t.TempDir(), "ran")
	editorScript(t, `if [ -e "`+marker+`" ]; then
  printf 'seeds: 5\n\na-to-b map:\n10 5 1\n' > "$1"
else
  touch "`+marker+`"
  echo "seeds: x" > "$1"
fi`)

	cmd, _, err := runEdit(t, "\n")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if cmd.newAlmanac == nil || cmd.newAlmanac.Location(5) != 10 {
		t.Errorf("Run() almanac = %v", cmd.newAlmanac)
	}
}
