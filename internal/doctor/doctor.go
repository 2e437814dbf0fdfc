// Package doctor provides environment health checks for grind.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"grind/internal/config"
	"grind/internal/engine"
)

// testable hooks
var (
	execCommand = exec.Command
	lookPath    = exec.LookPath
)

// Doctor performs profiling environment health checks
type Doctor struct {
	checks  []HealthCheck
	verbose bool
}

// HealthCheck represents a single diagnostic check
type HealthCheck interface {
	Name() string
	Description() string
	Run() CheckResult
	CanAutoFix() bool
	Fix() error
	Severity() Severity
}

// CheckResult contains the outcome of a health check
type CheckResult struct {
	Status     Status
	Message    string
	Details    string
	FixCommand string
	Impact     string
}

// Status represents check status
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusError
	StatusCritical
)

// Severity indicates how important a fix is
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// HealthReport summarizes checks
type HealthReport struct {
	TotalChecks int
	Passed      int
	Warnings    int
	Errors      int
	Critical    int
	StartTime   time.Time
	EndTime     time.Time
}

// Run executes all checks and prints a concise report
func (d *Doctor) Run() HealthReport {
	d.checks = []HealthCheck{
		&EngineCheck{},
		&WorkdirCheck{},
		&DiskSpaceCheck{},
		&ConfigCheck{},
	}
	rpt := HealthReport{StartTime: time.Now()}
	fmt.Println("\n🔬 grind doctor - Profiling Environment Check")
	fmt.Println(strings.Repeat("=", 52))
	for _, c := range d.checks {
		res := c.Run()
		d.printResult(res)
		rpt.TotalChecks++
		switch res.Status {
		case StatusOK:
			rpt.Passed++
		case StatusWarning:
			rpt.Warnings++
		case StatusError:
			rpt.Errors++
		case StatusCritical:
			rpt.Critical++
		}
	}
	rpt.EndTime = time.Now()
	fmt.Printf("\n⏱  Completed in %.2fs: %d passed, %d warnings, %d errors\n",
		rpt.EndTime.Sub(rpt.StartTime).Seconds(), rpt.Passed, rpt.Warnings, rpt.Errors+rpt.Critical)
	if rpt.Warnings+rpt.Errors+rpt.Critical > 0 {
		fmt.Println("Run 'grind doctor --fix' to auto-fix issues where possible")
	}
	return rpt
}

func (d *Doctor) printResult(r CheckResult) {
	icon := "✅"
	switch r.Status {
	case StatusOK:
		// keep default icon
	case StatusWarning:
		icon = "⚠️ "
	case StatusError, StatusCritical:
		icon = "❌"
	}
	fmt.Printf("%s %s\n", icon, r.Message)
	if r.Details != "" && d.verbose {
		fmt.Printf("   %s\n", r.Details)
	}
	if r.FixCommand != "" && r.Status != StatusOK {
		fmt.Printf("   💡 Fix: %s\n", r.FixCommand)
	}
	if r.Impact != "" && r.Status == StatusCritical {
		fmt.Printf("   ⚠️  Impact: %s\n", r.Impact)
	}
}

// EngineCheck verifies the profiling engine is installed and responding
type EngineCheck struct{}

func (c *EngineCheck) Name() string        { return "Profiling Engine" }
func (c *EngineCheck) Description() string { return "Checking the profiling engine binary" }
func (c *EngineCheck) CanAutoFix() bool    { return false }
func (c *EngineCheck) Fix() error          { return nil }
func (c *EngineCheck) Severity() Severity  { return SeverityCritical }

func (c *EngineCheck) Run() CheckResult {
	cfg, _ := config.Load()
	path, err := engine.Resolve(cfg)
	if err != nil {
		return CheckResult{
			Status:     StatusCritical,
			Message:    "No profiling engine found",
			Details:    "grind wraps valgrind's callgrind tool and cannot run without it",
			FixCommand: "apt install valgrind (or brew install valgrind)",
			Impact:     "grind cannot profile anything",
		}
	}
	out, err := execCommand(path, "--version").Output()
	if err != nil {
		return CheckResult{
			Status:     StatusError,
			Message:    fmt.Sprintf("%s is not responding", path),
			Details:    "Engine binary found but --version failed",
			FixCommand: fmt.Sprintf("%s --version", path),
			Impact:     "Profiling runs will fail at launch",
		}
	}
	return CheckResult{
		Status:  StatusOK,
		Message: fmt.Sprintf("Using %s (%s)", path, strings.TrimSpace(string(out))),
	}
}

// WorkdirCheck verifies the working directory accepts artifact files.
// The engine writes callgrind.out.* into the directory grind runs from.
type WorkdirCheck struct{}

func (c *WorkdirCheck) Name() string        { return "Working Directory" }
func (c *WorkdirCheck) Description() string { return "Checking artifact directory writability" }
func (c *WorkdirCheck) CanAutoFix() bool    { return false }
func (c *WorkdirCheck) Fix() error          { return nil }
func (c *WorkdirCheck) Severity() Severity  { return SeverityHigh }

func (c *WorkdirCheck) Run() CheckResult {
	wd, err := os.Getwd()
	if err != nil {
		return CheckResult{Status: StatusError, Message: "Cannot determine working directory"}
	}
	probe, err := os.CreateTemp(wd, ".grind-doctor-*")
	if err != nil {
		return CheckResult{
			Status:     StatusError,
			Message:    "Working directory is not writable",
			Details:    fmt.Sprintf("%s: the engine writes its artifacts here", wd),
			FixCommand: "cd to a writable directory before profiling",
			Impact:     "The engine cannot write profile data",
		}
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return CheckResult{Status: StatusOK, Message: "Working directory accepts artifact files"}
}

// DiskSpaceCheck ensures sufficient disk space for profile dumps
type DiskSpaceCheck struct{}

func (c *DiskSpaceCheck) Name() string        { return "Disk Space" }
func (c *DiskSpaceCheck) Description() string { return "Checking available disk" }
func (c *DiskSpaceCheck) CanAutoFix() bool    { return false }
func (c *DiskSpaceCheck) Fix() error          { return nil }
func (c *DiskSpaceCheck) Severity() Severity  { return SeverityMedium }

func (c *DiskSpaceCheck) Run() CheckResult {
	cmd := execCommand("df", "-h", ".")
	out, err := cmd.Output()
	if err != nil {
		return CheckResult{Status: StatusWarning, Message: "Could not check disk space"}
	}
	lines := strings.Split(string(out), "\n")
	if len(lines) > 1 {
		f := strings.Fields(lines[1])
		if len(f) > 3 {
			var size float64
			var unit string
			if n, err := fmt.Sscanf(f[3], "%f%s", &size, &unit); err == nil && n == 2 {
				if (unit == "G" && size < 1) || unit == "M" || unit == "K" {
					return CheckResult{
						Status:     StatusWarning,
						Message:    fmt.Sprintf("Low disk space: %s free", f[3]),
						Details:    "Instruction-level dumps for long runs can be large",
						FixCommand: "free disk space or profile from another directory",
						Impact:     "The engine may fail mid-run writing artifacts",
					}
				}
			}
		}
	}
	return CheckResult{Status: StatusOK, Message: "Sufficient disk space available"}
}

// ConfigCheck verifies the configuration file and its engine preference
type ConfigCheck struct{}

func (c *ConfigCheck) Name() string        { return "Configuration" }
func (c *ConfigCheck) Description() string { return "Checking ~/.grind.json" }
func (c *ConfigCheck) CanAutoFix() bool    { return true }
func (c *ConfigCheck) Severity() Severity  { return SeverityLow }

func (c *ConfigCheck) Fix() error {
	// Ensure ~/.grind exists with 0700 permissions for logs/crash reports
	dir := filepath.Join(os.Getenv("HOME"), ".grind")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o700)
	}
	return os.Chmod(dir, 0o700)
}

func (c *ConfigCheck) Run() CheckResult {
	cfg, err := config.Load()
	if err != nil {
		return CheckResult{
			Status:     StatusWarning,
			Message:    "Configuration file is unreadable",
			Details:    config.Path(),
			FixCommand: "fix permissions on " + config.Path(),
		}
	}
	if cfg.Engine != "" {
		if _, err := lookPath(cfg.Engine); err != nil {
			return CheckResult{
				Status:     StatusWarning,
				Message:    fmt.Sprintf("Configured engine %q not found; falling back to PATH", cfg.Engine),
				FixCommand: "update or remove the engine entry in " + config.Path(),
			}
		}
	}
	return CheckResult{Status: StatusOK, Message: "Configuration OK"}
}

// Fix attempts automatic fixes for checks that support it.
func (d *Doctor) Fix() {
	fmt.Println("\n🔧 Attempting to fix issues...")
	for _, c := range d.checks {
		res := c.Run()
		if res.Status != StatusOK && c.CanAutoFix() {
			if err := c.Fix(); err != nil {
				fmt.Printf("❌ %s: fix failed: %v\n", c.Name(), err)
			} else {
				fmt.Printf("✅ %s: fixed\n", c.Name())
			}
		}
	}
}

// RunDoctorWithOptions runs checks and optionally applies fixes.
func RunDoctorWithOptions(verbose, fix bool) {
	d := &Doctor{verbose: verbose}
	_ = d.Run()
	if fix {
		d.Fix()
	}
}
