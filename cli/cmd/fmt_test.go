package cmd

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/seedmap/almanac"
)

func TestNativeRun_RoundTrip(t *testing.T) {
	messy := "seeds:   79 14 55 13\r\n\r\n\r\nseed-to-soil map:\r\n50  98 2\r\n52 50 48\r\n\n" +
		exampleAlmanac[strings.Index(exampleAlmanac, "soil-to-fertilizer"):]

	f := &Native{Source: writeSource(t, "messy.txt", messy)}

	out, err := run(t, context.Background(), f.Run)
	if err != nil {
		t.Fatal(err)
	}

	if out != exampleAlmanac {
		t.Errorf("Native.Run() output =\n%s\nwant\n%s", out, exampleAlmanac)
	}
}

func TestJSONRun(t *testing.T) {
	f := &JSON{Indent: 2, Source: writeSource(t, "input.txt", exampleAlmanac)}

	out, err := run(t, context.Background(), f.Run)
	if err != nil {
		t.Fatal(err)
	}

	var doc almanac.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if len(doc.Seeds) != 4 || len(doc.Maps) != 7 {
		t.Errorf("doc = %+v", doc)
	}

	if doc.Maps[0].Source != "seed" || doc.Maps[6].Destination != "location" {
		t.Errorf("unexpected categories: %+v", doc.Maps)
	}
}

func TestJSONRun_Compact(t *testing.T) {
	f := &JSON{Indent: 0, Source: writeSource(t, "input.txt", "seeds: 1\n\na-to-b map:\n1 2 3\n")}

	out, err := run(t, context.Background(), f.Run)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Count(out, "\n") != 1 {
		t.Errorf("compact JSON spans several lines:\n%s", out)
	}
}

func TestYAMLRun(t *testing.T) {
	f := &YAML{Indent: 2, Source: writeSource(t, "input.txt", exampleAlmanac)}

	out, err := run(t, context.Background(), f.Run)
	if err != nil {
		t.Fatal(err)
	}

	var doc almanac.Document
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}

	if len(doc.Maps) != 7 || doc.Maps[3].Name != "water-to-light" {
		t.Errorf("doc = %+v", doc)
	}

	if r := doc.Maps[3].Ranges[0]; r != (almanac.Range{Destination: 88, Source: 18, Length: 7}) {
		t.Errorf("first water-to-light range = %+v", r)
	}
}

func TestDumpRun(t *testing.T) {
	f := &Dump{Source: writeSource(t, "input.txt", "seeds: 7\n\na-to-b map:\n1 2 3\n\nb-to-c map:\n4 5 6\n")}

	out, err := run(t, context.Background(), f.Run)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{`"a-to-b"`, `"b-to-c"`, "(uint64) 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestFmtRun_Errors(t *testing.T) {
	src := writeSource(t, "bad.txt", "seeds: x\n\na-to-b map:\n1 2 3\n")

	for name, fn := range map[string]func(context.Context) error{
		"native": (&Native{Source: src}).Run,
		"json":   (&JSON{Source: src}).Run,
		"yaml":   (&YAML{Source: src}).Run,
		"dump":   (&Dump{Source: src}).Run,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := run(t, context.Background(), fn); err == nil {
				t.Error("expected error for malformed seeds")
			}
		})
	}
}
