// Package cli contains the command line interface for seedmap.
//
// # Usage
//
// The default command reads an almanac and prints the lowest location
// reachable from any of its seeds:
//
//	seedmap almanac.txt
//	seedmap solve - < almanac.txt
//
// Other commands trace each seed through the maps, re-render the almanac,
// write a configuration file, or open an interactive session:
//
//	seedmap trace --seed 79 --format yaml almanac.txt
//	seedmap fmt json almanac.txt
//	seedmap init
//	seedmap repl almanac.txt
//
// Relative source paths that do not exist in the working directory are
// searched for in the config directory and then in each directory listed in
// SEEDMAP_PATH.
//
// # Configuration
//
// Flag values are taken, in increasing precedence, from defaults, the
// config files config.json and config.yaml in the config directory
// (~/.config/seedmap), SEEDMAP_* environment variables (a .env file in the
// working directory is loaded first), and the command line. The init
// command writes config.yaml from the current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// Logs are written to stderr. Every message carries a run attribute that is
// unique to the invocation.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o seedmap .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/seedmap/pprof)
package cli
