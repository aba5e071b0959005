package types

// DiagnosisResult is the structured output of one probe: a mapping of
// field name to scalar or nested value. A nil map marks a probe that
// could not run, which callers serialize as null rather than omitting.
type DiagnosisResult map[string]any

// PackageResult maps diagnosis name to its result for one package.
// Values are arbitrary because callers may register probes that return
// scalars as well as structured maps.
type PackageResult map[string]any

// InstallOutcome reports a best-effort package manager operation.
// Failures are carried as data, never raised: the diagnosis pipeline
// proceeds regardless of install state.
type InstallOutcome struct {
	Status OutcomeStatus
	Detail string
}

// Succeeded reports whether the operation completed without error.
func (o InstallOutcome) Succeeded() bool {
	return o.Status == OutcomeSucceeded
}
