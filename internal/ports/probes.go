package ports

import (
	"context"

	"pip-doctor/internal/types"
)

// ProbePort runs the built-in diagnosis probes. Each probe returns a
// nil result (and nil error) when its subject cannot be inspected; an
// error is reserved for genuine probe failures the orchestrator should
// report.
type ProbePort interface {
	// ImportDiagnosis imports the package inside the environment's
	// interpreter and counts its public attributes.
	ImportDiagnosis(ctx context.Context, pkg string, env string) (types.DiagnosisResult, error)

	// FolderDiagnosis walks the installed distribution's folder and
	// reports file count and total size.
	FolderDiagnosis(ctx context.Context, pkg string, env string) (types.DiagnosisResult, error)

	// TestDiagnosis runs doctest, unittest discovery, and pytest
	// against the installed package, keeping whichever sub-results
	// could be produced.
	TestDiagnosis(ctx context.Context, pkg string, env string) (types.DiagnosisResult, error)

	// JSONInfo extracts the fixed metadata field set from the index.
	JSONInfo(ctx context.Context, pkg string) (types.DiagnosisResult, error)

	// AllJSONInfo returns the raw index document.
	AllJSONInfo(ctx context.Context, pkg string) (types.DiagnosisResult, error)
}
