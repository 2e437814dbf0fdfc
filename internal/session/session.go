// Package session implements the profiling session: one execution of the
// external engine against one caller-supplied target command. A session is
// created, run once, and terminated; there is exactly one per grind
// invocation, never retried, never parallelized.
package session

import (
	"os"
	"os/signal"
	"syscall"

	"grind/internal/instrument"
	e "grind/pkg/errors"
	"grind/pkg/logger"
	"grind/pkg/proc"
)

// State tracks the session lifecycle. There are no intermediate states and
// no cancellation path beyond signalling the harness process itself.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateTerminated
)

// Session binds a resolved engine binary, an instrumentation configuration,
// and one immutable invocation request.
type Session struct {
	engine  string
	config  instrument.Config
	request []string
	state   State
	tag     string
}

// New creates a session for the given target command. The request is
// copied at capture time and owned exclusively by the session; an empty
// request is a usage error.
func New(enginePath string, cfg instrument.Config, request []string) (*Session, error) {
	if len(request) == 0 {
		return nil, e.New(e.ErrUsage, "No target command specified")
	}
	req := make([]string, len(request))
	copy(req, request)
	s := &Session{
		engine:  enginePath,
		config:  cfg,
		request: req,
	}
	s.tag = tagOf(s.Argv())
	return s, nil
}

// Argv returns the child-process argument vector: engine, instrumentation
// flags, then the target command and its arguments verbatim. Nothing is
// reordered, deduplicated, or interpreted.
func (s *Session) Argv() []string {
	argv := make([]string, 0, 1+4+len(s.request))
	argv = append(argv, s.engine)
	argv = append(argv, s.config.Args()...)
	argv = append(argv, s.request...)
	return argv
}

// Tag returns the deterministic short identifier for this session, derived
// from the full argument vector. Used only in diagnostics.
func (s *Session) Tag() string { return s.tag }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Config returns the session's instrumentation configuration.
func (s *Session) Config() instrument.Config { return s.config }

// Run launches the engine with the target as its payload and blocks until
// it terminates. The child inherits the working directory, environment,
// and standard streams; SIGINT/SIGTERM received while waiting are
// forwarded to the child so no orphaned engine outlives the harness. The
// returned ExitStatus reflects the child's termination (exit code or
// signal); a start failure is a LAUNCH_FAILED error and the status is
// meaningless.
func (s *Session) Run() (proc.ExitStatus, error) {
	if s.state != StateNotStarted {
		return proc.ExitStatus{}, e.New(e.ErrUnknown, "Profiling session already consumed")
	}

	argv := s.Argv()
	cmd := proc.Command(argv[0], argv[1:]...)
	proc.Inherit(cmd)

	logger.Verbosef("session %s: exec %s", s.tag, proc.JoinArgs(argv))

	if err := cmd.Start(); err != nil {
		s.state = StateTerminated
		return proc.ExitStatus{}, e.Wrap(err, e.ErrLaunchFailed, "Failed to launch profiling engine").
			WithContext("engine", s.engine).
			WithContext("session", s.tag)
	}
	s.state = StateRunning

	// Forward termination signals for the duration of the wait. The
	// relay stops before exit-status mirroring so a mirrored signal uses
	// its default disposition.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigc:
				logger.Debugf("session %s: forwarding %v to child", s.tag, sig)
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	close(done)
	signal.Stop(sigc)
	s.state = StateTerminated

	if err != nil {
		if st, ok := proc.FromError(err); ok {
			logger.Verbosef("session %s: child terminated with %+v", s.tag, st)
			return st, nil
		}
		return proc.ExitStatus{}, e.Wrap(err, e.ErrUnknown, "Waiting for profiling engine failed").
			WithContext("session", s.tag)
	}
	st := proc.FromProcessState(cmd.ProcessState)
	logger.Verbosef("session %s: child exited with status %d", s.tag, st.Code)
	return st, nil
}
