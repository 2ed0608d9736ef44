package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ardnew/seedmap/almanac"
)

const exampleAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// writeSource writes content to a file named name in a new temporary
// directory and returns its path.
func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// run executes fn with its output captured and returns the output.
func run(t *testing.T, ctx context.Context, fn func(context.Context) error) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	err := fn(WithOutput(ctx, &buf))

	return buf.String(), err
}

func TestOutputFrom(t *testing.T) {
	if w := outputFrom(context.Background()); w != os.Stdout {
		t.Errorf("outputFrom() = %v, want os.Stdout", w)
	}

	var buf bytes.Buffer
	if w := outputFrom(WithOutput(context.Background(), &buf)); w != io.Writer(&buf) {
		t.Errorf("outputFrom() = %v, want buffer", w)
	}
}

func TestKongContextFrom_Missing(t *testing.T) {
	if ktx := kongContextFrom(context.Background()); ktx != nil {
		t.Errorf("kongContextFrom() = %v, want nil", ktx)
	}
}

func TestSearchPath(t *testing.T) {
	env := "SEEDMAP_TEST_SEARCH_PATH"
	first := t.TempDir()
	second := t.TempDir()
	prefix := t.TempDir()

	t.Setenv(env, first+string(os.PathListSeparator)+second)

	dirs := SearchPath(env, prefix)

	for _, want := range []string{prefix, first, second} {
		if !slices.Contains(dirs, want) {
			t.Errorf("SearchPath() = %v, missing %q", dirs, want)
		}
	}

	if slices.Contains(dirs, "") {
		t.Errorf("SearchPath() = %v, contains empty element", dirs)
	}
}

func TestResolveSource(t *testing.T) {
	path := writeSource(t, "input.txt", exampleAlmanac)
	dir := filepath.Dir(path)

	t.Run("existing", func(t *testing.T) {
		got, err := resolveSource(context.Background(), path)
		if err != nil || got != path {
			t.Errorf("resolveSource() = %q, %v; want %q", got, err, path)
		}
	})

	t.Run("search_path", func(t *testing.T) {
		ctx := WithSearchPath(context.Background(), []string{t.TempDir(), dir})

		got, err := resolveSource(ctx, "input.txt")
		if err != nil || got != path {
			t.Errorf("resolveSource() = %q, %v; want %q", got, err, path)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		ctx := WithSearchPath(context.Background(), []string{t.TempDir()})

		_, err := resolveSource(ctx, "no-such-almanac.txt")
		if !errors.Is(err, ErrOpenSource) || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("resolveSource() error = %v, want ErrOpenSource", err)
		}
	})
}

func TestLoadAlmanac(t *testing.T) {
	path := writeSource(t, "input.txt", exampleAlmanac)

	a, err := loadAlmanac(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	if got := a.Seeds(); !slices.Equal(got, []uint64{79, 14, 55, 13}) {
		t.Errorf("Seeds() = %v", got)
	}

	_, err = loadAlmanac(context.Background(), writeSource(t, "bad.txt", "seeds: 1\n"))
	if !errors.Is(err, almanac.ErrNoMaps) {
		t.Errorf("loadAlmanac() error = %v, want ErrNoMaps", err)
	}
}

func TestError(t *testing.T) {
	base := NewError("base")

	if got := base.Wrap(io.EOF).Error(); got != "base: EOF" {
		t.Errorf("Error() = %q", got)
	}

	if got := WrapError(io.EOF).Error(); got != "EOF" {
		t.Errorf("WrapError().Error() = %q", got)
	}

	derived := base.With().Wrap(io.EOF)
	if !errors.Is(derived, base) || !errors.Is(derived, io.EOF) {
		t.Error("derived error does not match its sentinel and cause")
	}

	if errors.Is(derived, NewError("other")) {
		t.Error("derived error matches unrelated sentinel")
	}

	if !strings.Contains(base.LogValue().String(), "base") {
		t.Errorf("LogValue() = %v", base.LogValue())
	}
}
