package almanac

import (
	"log/slog"

	"github.com/ardnew/seedmap/token"
)

// headingKey is the word that terminates a table heading.
const headingKey = "map"

// BuildChain builds a linked chain of tables from blocks of lines, each
// beginning with a "<name> map:" heading followed by its rows. Tables link
// in declaration order and the returned head is the first block's table.
func BuildChain(blocks [][]string) (*Table, error) {
	var next *Table

	// Built last to first so each table is constructed with its successor.
	for i := len(blocks) - 1; i >= 0; i-- {
		block := blocks[i]
		if len(block) == 0 {
			return nil, ErrMalformedHeading.With(slog.Int("block", i+1))
		}

		tok, err := token.Before(block[0], headingKey, "", " ")
		if err != nil {
			return nil, ErrMalformedHeading.Wrap(err).With(
				slog.Int("block", i+1),
				slog.String("text", block[0]),
			)
		}

		t, err := BuildTable(tok.Value, block[1:], next)
		if err != nil {
			return nil, err
		}

		next = t
	}

	if next == nil {
		return nil, ErrNoMaps
	}

	return next, nil
}
