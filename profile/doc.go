// Package profile provides optional runtime profiling for seedmap.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] to provide runtime profiling
// with conditional compilation support. Profiling is optional and must be
// enabled at build time using the "pprof" build tag:
//
//	go build -tags pprof -o seedmap .
//
// When built without the tag, [Config.Start] is a no-op and [Modes] is empty.
//
// # Available Profiling Modes
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// # Usage
//
//	cfg := profile.Config{Mode: "cpu", Dir: "/tmp/profiles"}
//
//	defer cfg.Start().Stop()
//
// Profile files are written to the configured directory with names matching
// the profiling mode (e.g., cpu.pprof, mem.pprof). The command line exposes
// the same settings:
//
//	seedmap --pprof-mode cpu solve input.txt
//	seedmap --pprof-mode heap --pprof-dir ./profiles solve input.txt
//
// The default output directory is the "pprof" subdirectory of the seedmap
// cache directory. Analyze the result with go tool pprof:
//
//	go tool pprof -http=: ./profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
