// Package version exposes the grind build version.
package version

// Version is the grind release version. Overridden at build time via
// -ldflags "-X grind/pkg/version.Version=v1.2.3".
var Version = "dev"
