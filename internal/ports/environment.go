package ports

import (
	"context"

	"pip-doctor/internal/types"
)

// EnvironmentPort probes and manages virtual environments on disk.
type EnvironmentPort interface {
	// CurrentPath returns the active virtual environment path from the
	// process environment, or empty when none is active.
	CurrentPath() string

	// Exists reports whether path denotes an existing directory.
	Exists(path string) bool

	// ResolvePath joins and normalizes baseDir and name into an
	// absolute path. Existence is not checked.
	ResolvePath(name string, baseDir string) (string, error)

	// Create builds the environment at path if it does not exist yet.
	Create(ctx context.Context, path string) error

	// DetectManager identifies which tool created the environment.
	DetectManager(path string) types.EnvManager
}
