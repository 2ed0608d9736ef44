// Package cmd implements the seedmap subcommands: solve, trace, fmt, init
// and repl.
//
// Commands read their almanac from a source argument, which is either a file
// path or "-" for stdin. Relative paths not found in the working directory
// are searched for in the directories of the search path (see
// [WithSearchPath]). Results are written to the output stored in the context
// by [WithOutput], defaulting to stdout; logs go to the default logger.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file written by the init command.
	ConfigIdentifier = "config"
)
