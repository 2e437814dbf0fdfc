package commands

import (
	"fmt"

	"grind/internal/config"
	"grind/internal/engine"
	"grind/internal/instrument"
)

// Engine shows which profiling engine binary resolution picked and how it
// will be invoked. Useful when GRIND_ENGINE, the config file, and PATH
// disagree.
func Engine(args []string) error {
	if len(args) > 0 && args[0] != "info" {
		fmt.Println("Usage: grind engine [info]")
		return fmt.Errorf("unknown engine subcommand: %s", args[0])
	}

	cfg, _ := config.Load()
	eng, err := engine.Info(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Engine:  %s\n", eng.Path)
	fmt.Printf("Version: %s\n", eng.Version)
	fmt.Printf("Flags:   %v\n", instrument.Default().Args())
	return nil
}
