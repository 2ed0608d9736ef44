package almanac

import (
	"bytes"
	"context"
	"encoding/gob"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/seedmap/log"
	"github.com/ardnew/seedmap/token"
)

// globalCache stores parse results keyed by a hash of the source content.
var globalCache sync.Map

// state is a cached parse result, computed once.
type state struct {
	once    sync.Once
	almanac *Almanac
	err     error
}

// hashOptions encodes the logger settings of a using gob and hashes them with
// xxh3. Loggers sharing level and format share cache entries.
func hashOptions(a *Almanac) uint64 {
	var buf bytes.Buffer

	enc := gob.NewEncoder(&buf)

	_ = enc.Encode(a.logger.Enabled(context.Background(), log.LevelError))
	_ = enc.Encode(int(a.logger.Level()))
	_ = enc.Encode(int(a.logger.Format()))

	return xxh3.Hash(buf.Bytes())
}

// ParseReader reads an almanac from r and parses it. Results, including
// errors, are cached by content and options so identical input is parsed only
// once. The cached almanac keeps the logger of its first parse; loggers with
// the same level and format are interchangeable.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Almanac, error) {
	var tmp Almanac

	applyOptions(&tmp, opts...)

	lines, err := token.ScanLines(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).With(slog.String("source", "reader"))
	}

	sourceHash := xxh3.HashString(strings.Join(lines, "\n"))
	optsHash := hashOptions(&tmp)
	key := strconv.FormatUint(sourceHash^optsHash, 36)

	value, hit := globalCache.LoadOrStore(key, new(state))

	entry, ok := value.(*state)
	if !ok {
		return nil, ErrReadInput.With(slog.String("cache_key", key))
	}

	tmp.logger.TraceContext(ctx, "parse cache",
		slog.String("key", key),
		slog.String("opts_hash", strconv.FormatUint(optsHash, 16)),
		slog.Bool("hit", hit),
		slog.Int("lines", len(lines)),
	)

	entry.once.Do(func() {
		entry.almanac, entry.err = Parse(ctx, lines, opts...)
	})

	return entry.almanac, entry.err
}

// ClearCache discards every cached parse result.
func ClearCache() {
	globalCache.Clear()
}
