package proc

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"
)

// ExitStatus describes how a child process terminated. For a normal exit,
// Code holds the child's status and Signal is zero. For a signal-killed
// child, Signal holds the signal and Code holds the conventional 128+N
// encoding as a fallback representation.
type ExitStatus struct {
	Code   int
	Signal syscall.Signal
}

// Signaled reports whether the child was terminated by a signal.
func (s ExitStatus) Signaled() bool {
	return s.Signal != 0
}

// FromProcessState extracts an ExitStatus from a finished process state.
func FromProcessState(st *os.ProcessState) ExitStatus {
	if ws, ok := st.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		sig := ws.Signal()
		return ExitStatus{Code: 128 + int(sig), Signal: sig}
	}
	return ExitStatus{Code: st.ExitCode()}
}

// FromError extracts an ExitStatus from an error returned by exec.Cmd.Wait
// or Run. The second return value is false when err does not carry a
// process state (e.g. the command never started).
func FromError(err error) (ExitStatus, bool) {
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ProcessState != nil {
		return FromProcessState(ee.ProcessState), true
	}
	return ExitStatus{}, false
}

// Mirror terminates the current process so that its observable termination
// matches st. A signal-killed child is mirrored by re-raising the same
// signal against ourselves with the default disposition restored, so the
// parent shell sees genuine signal termination rather than a plain exit
// code. If delivery does not take effect, the 128+N convention is the
// fallback. This function does not return.
func Mirror(st ExitStatus) {
	if st.Signaled() {
		signal.Reset(os.Signal(st.Signal))
		_ = syscall.Kill(os.Getpid(), st.Signal)
		// Delivery is asynchronous; give the kernel a moment before the
		// fallback path.
		time.Sleep(100 * time.Millisecond)
	}
	os.Exit(st.Code)
}
