// Package instrument defines the instrumentation configuration passed to
// the profiling engine. The configuration is an explicit value rather than
// a literal flag string so that variants (e.g. disabling cache simulation)
// stay testable independent of process spawning.
package instrument

// Tool selects the Valgrind tool driving the session.
type Tool string

const (
	// ToolCallgrind records the call graph with per-instruction costs.
	ToolCallgrind Tool = "callgrind"
	// ToolCachegrind records cache statistics without call-graph output.
	ToolCachegrind Tool = "cachegrind"
)

// Config describes one profiling session's instrumentation. The default
// configuration is fixed for the lifetime of a session and is prepended to
// the engine invocation ahead of the caller's target command.
type Config struct {
	Tool Tool

	// DumpInstructions enables per-instruction event annotation in the
	// engine's output files.
	DumpInstructions bool

	// CollectJumps enables conditional/unconditional branch-edge
	// collection for jump profiling.
	CollectJumps bool

	// CacheSimulation enables the I1/D1/LL cache hierarchy simulation.
	CacheSimulation bool
}

// Default returns the harness's standard configuration: callgrind with
// instruction annotation, jump collection, and cache simulation all on.
func Default() Config {
	return Config{
		Tool:             ToolCallgrind,
		DumpInstructions: true,
		CollectJumps:     true,
		CacheSimulation:  true,
	}
}

// Args renders the configuration as engine command-line flags, in a fixed
// order. Flags are always emitted explicitly (yes or no) so two configs
// that differ produce visibly different invocations.
func (c Config) Args() []string {
	tool := c.Tool
	if tool == "" {
		tool = ToolCallgrind
	}
	return []string{
		"--tool=" + string(tool),
		yesno("--dump-instr", c.DumpInstructions),
		yesno("--collect-jumps", c.CollectJumps),
		yesno("--cache-sim", c.CacheSimulation),
	}
}

func yesno(flag string, on bool) string {
	if on {
		return flag + "=yes"
	}
	return flag + "=no"
}
