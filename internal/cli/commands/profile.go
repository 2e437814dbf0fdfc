package commands

import (
	"fmt"
	"os"

	"grind/internal/artifacts"
	"grind/internal/config"
	"grind/internal/engine"
	"grind/internal/instrument"
	"grind/internal/session"
	e "grind/pkg/errors"
	"grind/pkg/logger"
	"grind/pkg/proc"
)

// Profile runs the target command under the profiling engine and mirrors
// its termination status. This is grind's default operation: every token
// in args belongs to the target and passes through verbatim. On success
// this function does not return; the process exits (or re-raises the
// target's fatal signal) with the child's status.
func Profile(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: grind <target-command> [target-args...]")
		return e.New(e.ErrUsage, "No target command specified")
	}

	sess, err := newSession(args)
	if err != nil {
		return err
	}

	status, err := sess.Run()
	if err != nil {
		return err
	}

	reportArtifacts(sess.Config())

	logger.Close()
	proc.Mirror(status)
	return nil // unreachable; Mirror terminates the process
}

// newSession resolves the engine and binds it to the invocation request
// with the default instrumentation configuration. Resolution happens
// before any spawn attempt so a missing engine fails fast instead of
// surfacing as an opaque exec error, and never falls back to running the
// target unprofiled.
func newSession(request []string) (*session.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warnf("ignoring unreadable config: %v", err)
		cfg = nil
	}
	enginePath, err := engine.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	return session.New(enginePath, instrument.Default(), request)
}

// reportArtifacts logs how many artifact files the engine left behind.
// Enumeration only: names and counts, never contents.
func reportArtifacts(cfg instrument.Config) {
	found, err := artifacts.List(".", cfg.Tool)
	if err != nil || len(found) == 0 {
		return
	}
	logger.Verbosef("%d %s artifact(s) in the working directory; see 'grind artifacts'",
		len(found), cfg.Tool)
}
