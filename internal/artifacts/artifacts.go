// Package artifacts enumerates profile data files the engine leaves in the
// working directory. The files follow the engine's own naming convention
// (callgrind.out.<pid>, with .<n> suffixes for multi-dump runs); their
// contents are opaque to grind and are never parsed, validated, or cleaned
// up. Ownership stays with the engine.
package artifacts

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gobwas/glob"

	"grind/internal/instrument"
	e "grind/pkg/errors"
)

// Artifact describes one engine output file.
type Artifact struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Pattern returns the glob matching a tool's artifact file names.
func Pattern(tool instrument.Tool) string {
	if tool == "" {
		tool = instrument.ToolCallgrind
	}
	return string(tool) + ".out.*"
}

// List returns the artifacts in dir matching the tool's naming convention,
// sorted by name. Subdirectories are not descended into; the engine writes
// flat into the working directory.
func List(dir string, tool instrument.Tool) ([]Artifact, error) {
	g, err := glob.Compile(Pattern(tool))
	if err != nil {
		return nil, e.Wrap(err, e.ErrUnknown, "Bad artifact pattern")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, e.Wrap(err, e.ErrUnknown, "Cannot read artifact directory").
			WithContext("dir", dir)
	}

	var out []Artifact
	for _, entry := range entries {
		if entry.IsDir() || !g.Match(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue // raced with deletion; skip
		}
		out = append(out, Artifact{
			Name:    filepath.Join(dir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
