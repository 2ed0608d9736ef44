package profile

// Config selects a profiler and where it writes its output.
type Config struct {
	// Mode is one of [Modes], or empty to disable profiling.
	Mode string
	// Dir is the output directory. Empty uses the working directory.
	Dir string
	// Quiet suppresses the profiler's own log messages.
	Quiet bool
}

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Start begins profiling as configured and returns the session.
//
// If built without tag pprof, or if Mode is empty or unknown, Start returns
// a no-op session. Both Start and Stop are always safely callable.
func (c Config) Start() Stopper {
	if c.Mode == "" {
		return ignore{}
	}

	return start(c)
}

type ignore struct{}

func (ignore) Stop() {}
