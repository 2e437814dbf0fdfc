package commands

import (
	"fmt"

	"grind/internal/artifacts"
	"grind/internal/instrument"
)

// Artifacts lists the profile data files the engine produced, by naming
// convention only. Contents stay opaque; rendering them belongs to tools
// like callgrind_annotate and kcachegrind, not to grind.
func Artifacts(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	found, err := artifacts.List(dir, instrument.ToolCallgrind)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Printf("No callgrind artifacts in %s\n", dir)
		return nil
	}
	for _, a := range found {
		fmt.Printf("%-40s %8d bytes  %s\n", a.Name, a.Size, a.ModTime.Format("2006-01-02 15:04:05"))
	}
	return nil
}
