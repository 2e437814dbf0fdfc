package cli

import (
	"grind/internal/cli/commands"
)

// Registry adapters over the extracted command functions

type profileCmd struct{}

func (profileCmd) Name() string        { return "profile" }
func (profileCmd) Description() string { return "Profile a target command under the engine" }
func (profileCmd) Run(args []string) error {
	return commands.Profile(args)
}

type doctorCmd struct{}

func (doctorCmd) Name() string        { return "doctor" }
func (doctorCmd) Description() string { return "Check the profiling environment" }
func (doctorCmd) Run(args []string) error {
	return commands.Doctor(args)
}

type engineCmd struct{}

func (engineCmd) Name() string        { return "engine" }
func (engineCmd) Description() string { return "Show the resolved profiling engine" }
func (engineCmd) Run(args []string) error {
	return commands.Engine(args)
}

type artifactsCmd struct{}

func (artifactsCmd) Name() string        { return "artifacts" }
func (artifactsCmd) Description() string { return "List engine output files" }
func (artifactsCmd) Run(args []string) error {
	return commands.Artifacts(args)
}

type completionCmd struct{}

func (completionCmd) Name() string        { return "completion" }
func (completionCmd) Description() string { return "Print shell completions (bash, zsh)" }
func (completionCmd) Run(args []string) error {
	return commands.Completion(args)
}

// Command factory functions
func NewProfileCommand() Command    { return profileCmd{} }
func NewDoctorCommand() Command     { return doctorCmd{} }
func NewEngineCommand() Command     { return engineCmd{} }
func NewArtifactsCommand() Command  { return artifactsCmd{} }
func NewCompletionCommand() Command { return completionCmd{} }
