package almanac

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardnew/seedmap/log"
)

func TestParseReader_Cache(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	ctx := context.Background()

	first, err := ParseReader(ctx, strings.NewReader(example))
	require.NoError(t, err)

	second, err := ParseReader(ctx, strings.NewReader(example))
	require.NoError(t, err)
	require.Same(t, first, second)

	ClearCache()

	third, err := ParseReader(ctx, strings.NewReader(example))
	require.NoError(t, err)
	require.NotSame(t, first, third)
	require.Equal(t, first.Document(), third.Document())
}

func TestParseReader_CachesErrors(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	ctx := context.Background()

	for range 2 {
		_, err := ParseReader(ctx, strings.NewReader("seeds: 1\n"))
		require.ErrorIs(t, err, ErrNoMaps)
	}
}

func TestParseReader_Concurrent(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	results := make(chan *Almanac, 8)

	for range cap(results) {
		go func() {
			a, err := ParseReader(context.Background(), strings.NewReader(example))
			if err != nil {
				results <- nil

				return
			}

			results <- a
		}()
	}

	var first *Almanac

	for range cap(results) {
		a := <-results
		require.NotNil(t, a)

		if first == nil {
			first = a
		}

		require.Same(t, first, a)
	}
}

func TestParseReader_CacheKeyedByOptions(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	ctx := context.Background()

	var buf bytes.Buffer

	debug := log.Make(&buf, log.WithLevel(log.LevelDebug))
	info := log.Make(&buf, log.WithLevel(log.LevelInfo))

	plain, err := ParseReader(ctx, strings.NewReader(example))
	require.NoError(t, err)

	first, err := ParseReader(ctx, strings.NewReader(example), WithLogger(debug))
	require.NoError(t, err)
	require.NotSame(t, plain, first)
	require.Contains(t, buf.String(), "parsed almanac")

	second, err := ParseReader(ctx, strings.NewReader(example), WithLogger(info))
	require.NoError(t, err)
	require.NotSame(t, first, second)

	again, err := ParseReader(ctx, strings.NewReader(example),
		WithLogger(log.Make(io.Discard, log.WithLevel(log.LevelDebug))))
	require.NoError(t, err)
	require.Same(t, first, again)
}
