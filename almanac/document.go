package almanac

import (
	"bufio"
	"io"
	"strconv"
)

// Document is the exported, encodable form of an [Almanac].
type Document struct {
	Seeds []uint64      `json:"seeds" yaml:"seeds"`
	Maps  []MapDocument `json:"maps"  yaml:"maps"`
}

// MapDocument is the exported, encodable form of a [Table].
type MapDocument struct {
	Name        string  `json:"name"                  yaml:"name"`
	Source      string  `json:"source,omitempty"      yaml:"source,omitempty"`
	Destination string  `json:"destination,omitempty" yaml:"destination,omitempty"`
	Ranges      []Range `json:"ranges"                yaml:"ranges"`
}

// Document returns the encodable form of a.
func (a *Almanac) Document() Document {
	doc := Document{Seeds: a.Seeds(), Maps: []MapDocument{}}

	for t := range a.Tables() {
		doc.Maps = append(doc.Maps, MapDocument{
			Name:        t.name,
			Source:      t.Source(),
			Destination: t.Destination(),
			Ranges:      t.Ranges(),
		})
	}

	return doc
}

// Format writes a in the native almanac text format. The output parses
// back into an equivalent almanac.
func (a *Almanac) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(seedsKey)

	for _, seed := range a.seeds {
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatUint(seed, 10))
	}

	bw.WriteByte('\n')

	for t := range a.Tables() {
		bw.WriteString("\n" + t.name + " " + headingKey + ":\n")

		for _, r := range t.ranges {
			bw.WriteString(r.String())
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}
