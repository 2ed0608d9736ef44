package cmd

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/mung"

	"github.com/ardnew/seedmap/almanac"
	"github.com/ardnew/seedmap/log"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// SearchPath splits the PATH-like list held in the environment variable env
// into directories, with prefix prepended. Empty elements are dropped.
func SearchPath(env string, prefix ...string) []string {
	list := mung.Make(
		mung.WithSubjectItems(os.Getenv(env)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String()

	var dirs []string

	for dir := range strings.SplitSeq(list, string(os.PathListSeparator)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// resolveSource returns the path of the file named by src. A relative path
// that does not exist in the working directory is looked up in each
// directory of the search path stored in ctx.
func resolveSource(ctx context.Context, src string) (string, error) {
	if isFile(src) || filepath.IsAbs(src) {
		return src, nil
	}

	for _, dir := range searchPathFrom(ctx) {
		path := filepath.Join(dir, src)
		if isFile(path) {
			log.TraceContext(ctx, "source found in search path",
				slog.String("source", src),
				slog.String("path", path),
			)

			return path, nil
		}
	}

	return "", ErrOpenSource.Wrap(fs.ErrNotExist).
		With(slog.String("source", src))
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// openSource opens the almanac named by src, or stdin if src is "-".
func openSource(ctx context.Context, src string) (io.ReadCloser, error) {
	if src == "" || src == stdinSource {
		return io.NopCloser(os.Stdin), nil
	}

	path, err := resolveSource(ctx, src)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenSource.Wrap(err).With(slog.String("source", path))
	}

	return file, nil
}

// loadAlmanac opens and parses the almanac named by src.
func loadAlmanac(ctx context.Context, src string) (*almanac.Almanac, error) {
	file, err := openSource(ctx, src)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	a, err := almanac.ParseReader(
		ctx,
		bufio.NewReader(file),
		almanac.WithLogger(log.Default()),
	)
	if err != nil {
		return nil, almanac.WrapError(err).With(slog.String("source", src))
	}

	return a, nil
}
