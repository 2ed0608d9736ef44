package cli

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/seedmap/log"
)

// resolve is a [kong.ConfigurationLoader] that reads YAML config files such
// as the one written by the init command.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The YAML document is converted as follows:
//   - Top-level keys name flags; hyphens and underscores are interchangeable
//   - Nested mappings are flattened, joining keys with a hyphen, so
//     log: {level: debug} sets --log-level
//   - Numbers are converted to strings for Kong to parse
//   - Sequences become comma-separated lists
//
// Example config file:
//
//	log-level: debug
//	log_format: text
//	log:
//	  pretty: false
//
// Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return config{}, nil
		}

		// Parse error - ignore the file rather than refuse to start
		log.Warn("ignoring unreadable config",
			slog.String("error", err.Error()),
		)

		return config{}, nil
	}

	cfg := make(config)
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Keys are stored with hyphens
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flatten stores every scalar of m under its hyphen-joined key path.
func (r config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		key = prefix + strings.ReplaceAll(key, "_", "-")

		if nested, ok := value.(map[string]any); ok {
			r.flatten(key+"-", nested)

			continue
		}

		r[key] = scalar(value)
	}
}

// scalar converts a decoded YAML value into a form Kong can parse.
func scalar(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, stringify(scalar(item)))
		}

		return strings.Join(items, ",")
	default:
		return v
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		b, err := yaml.MarshalWithOptions(v, yaml.Flow(true))
		if err != nil {
			return ""
		}

		return strings.TrimSpace(string(b))
	}
}
