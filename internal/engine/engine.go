// Package engine locates the external profiling engine binary. The engine
// is assumed pre-installed and discoverable; grind never installs,
// downloads, or falls back to running the target unprofiled.
package engine

import (
	"os"
	"os/exec"
	"strings"

	"grind/internal/config"
	e "grind/pkg/errors"
	"grind/pkg/logger"
)

const (
	// DefaultName is the engine binary searched on PATH when nothing is
	// configured.
	DefaultName = "valgrind"

	// EnvOverride names the environment variable taking highest priority
	// in engine resolution.
	EnvOverride = "GRIND_ENGINE"
)

// testable hooks
var (
	lookPath    = exec.LookPath
	execCommand = exec.Command
)

// Engine describes a resolved profiling engine binary.
type Engine struct {
	Name    string
	Path    string
	Version string
}

// Resolve locates the profiling engine executable. Priority order:
// GRIND_ENGINE override, user configuration, then PATH lookup of the
// default binary. An override that does not resolve is reported and
// skipped rather than aborting, matching how the rest of the resolution
// chain degrades. When nothing resolves, the returned error is an
// ENGINE_NOT_FOUND with a remediation hint; the target is never attempted.
func Resolve(cfg *config.Config) (string, error) {
	if env := os.Getenv(EnvOverride); env != "" {
		if path, err := lookPath(env); err == nil {
			logger.Debugf("engine resolved from %s: %s", EnvOverride, path)
			return path, nil
		}
		logger.Warnf("%s=%s does not resolve to an executable; ignoring", EnvOverride, env)
	}
	if cfg != nil && cfg.Engine != "" {
		if path, err := lookPath(cfg.Engine); err == nil {
			logger.Debugf("engine resolved from config: %s", path)
			return path, nil
		}
		logger.Warnf("configured engine %q does not resolve to an executable; ignoring", cfg.Engine)
	}
	if path, err := lookPath(DefaultName); err == nil {
		logger.Debugf("engine resolved from PATH: %s", path)
		return path, nil
	}
	return "", e.New(e.ErrEngineNotFound, "Profiling engine not found").
		WithDetails("grind drives an external cache-simulating profiler and cannot run without one").
		WithContext("engine", DefaultName)
}

// Info resolves the engine and probes its version. A binary that resolves
// but does not answer --version is reported as not responding.
func Info(cfg *config.Config) (Engine, error) {
	path, err := Resolve(cfg)
	if err != nil {
		return Engine{}, err
	}
	eng := Engine{Name: DefaultName, Path: path}
	out, err := execCommand(path, "--version").Output()
	if err != nil {
		return eng, e.Wrap(err, e.ErrEngineNotResponding, "Profiling engine is not responding").
			WithContext("engine", path)
	}
	eng.Version = strings.TrimSpace(string(out))
	return eng, nil
}
