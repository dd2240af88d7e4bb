// Package rundir archives simulation runs. Each run gets its own
// directory named after a memorable identifier, holding a copy of the
// config it was produced from next to the rendered artifacts, with a
// "latest" symlink pointing at the newest run.
package rundir

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	RunsDir       = "runs"
	LatestSymlink = "latest"
)

type RunDir struct {
	Path      string    // absolute path to the run directory
	ID        string    // unique run identifier
	Timestamp time.Time // when the run was created
}

// Create makes a new run directory under parent and points the latest
// symlink at it. An empty parent defaults to RunsDir in the working
// directory.
func Create(parent string) (*RunDir, error) {
	if parent == "" {
		parent = RunsDir
	}
	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, fmt.Errorf("creating runs directory: %w", err)
	}

	// Two runs in the same second can draw the same name; retry with
	// a fresh one.
	var id, absPath string
	for attempt := 0; ; attempt++ {
		id = GenerateRunID()
		p, err := filepath.Abs(filepath.Join(parent, id))
		if err != nil {
			return nil, fmt.Errorf("getting absolute path: %w", err)
		}
		if err := os.Mkdir(p, 0755); err != nil {
			if os.IsExist(err) && attempt < 3 {
				continue
			}
			return nil, fmt.Errorf("creating run directory: %w", err)
		}
		absPath = p
		break
	}

	latestPath := filepath.Join(parent, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		// A run without the convenience symlink is still usable.
		log.WithError(err).Warn("Could not update latest symlink")
	}

	return &RunDir{
		Path:      absPath,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}, nil
}

// FilePath returns the absolute path for a file inside the run
// directory.
func (r *RunDir) FilePath(name string) string {
	return filepath.Join(r.Path, name)
}

// CopyConfig copies the config file the run was produced from into the
// run directory, keeping its base name.
func (r *RunDir) CopyConfig(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	destPath := r.FilePath(filepath.Base(srcPath))
	if err := os.WriteFile(destPath, content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
