package main

import (
	"os"
	"strings"

	"grind/internal/cli"
	"grind/pkg/logger"
)

func main() {
	verbose, debug, args := splitGlobalFlags(os.Args)

	// Env overrides
	if strings.EqualFold(os.Getenv("GRIND_VERBOSE"), "1") {
		verbose = true
	}
	if strings.EqualFold(os.Getenv("GRIND_DEBUG"), "1") {
		debug = true
	}

	// Initialize logging (stderr only; stdout belongs to the target)
	logger.Initialize(verbose, debug)
	defer logger.Close()

	handler := cli.NewErrorHandler(verbose, debug)
	// Install a panic recoverer to avoid raw panics
	var ph cli.PanicHandler
	defer ph.Recover()

	app := cli.New()
	if err := app.Run(args); err != nil {
		handler.Handle(err)
	}
}

// splitGlobalFlags consumes grind's own flags, which are only recognized
// BEFORE the first free token. Everything from the target command onward
// passes through verbatim, so `grind --verbose ./bench --verbose` logs
// verbosely while ./bench still receives its own --verbose.
func splitGlobalFlags(argv []string) (verbose, debug bool, args []string) {
	args = make([]string, 0, len(argv))
	if len(argv) > 0 {
		args = append(args, argv[0])
		argv = argv[1:]
	}
	for len(argv) > 0 {
		switch argv[0] {
		case "--verbose", "-v":
			verbose = true
			argv = argv[1:]
			continue
		case "--debug":
			debug = true
			argv = argv[1:]
			continue
		}
		break
	}
	args = append(args, argv...)
	return verbose, debug, args
}
