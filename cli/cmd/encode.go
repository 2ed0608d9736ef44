package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// writeJSON writes v to w as JSON, indented by indent spaces if positive.
func writeJSON(w io.Writer, v any, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return ErrMarshalJSON.Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// writeYAML writes v to w as YAML, indented by indent spaces if positive or
// in flow style otherwise.
func writeYAML(ctx context.Context, w io.Writer, v any, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, v, opts...)
	if err != nil {
		return ErrMarshalYAML.Wrap(err)
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
