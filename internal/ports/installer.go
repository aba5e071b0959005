package ports

import (
	"context"

	"pip-doctor/internal/types"
)

// InstallerPort shells out to pip to install, query, and remove
// packages. Install and Uninstall are best-effort: failures come back
// as an explicit outcome, never as an error.
type InstallerPort interface {
	// Install installs pkg into the environment at env (ambient pip
	// when env is empty).
	Install(ctx context.Context, pkg string, env string) types.InstallOutcome

	// IsInstalled reports whether pkg is present in the environment.
	// Any query failure reads as not installed.
	IsInstalled(ctx context.Context, pkg string, env string) bool

	// Uninstall removes pkg using the ambient pip on PATH, not the
	// environment's copy.
	Uninstall(ctx context.Context, pkg string) types.InstallOutcome
}
