package app

import (
	"pip-doctor/internal/core"
	"pip-doctor/internal/types"
)

// ErrorReporter receives each diagnosis failure without stopping the
// batch.
type ErrorReporter func(pkg string, diagnosis string, err error)

type DiagnoseRequest struct {
	// Packages holds package names, whitespace-separated name lists,
	// or a single path to a requirements-style file.
	Packages []string

	// Diagnoses selects built-in diagnoses by name; empty means all.
	Diagnoses []string

	// Selectors takes precedence over Diagnoses and may carry custom
	// diagnosis functions alongside built-in names.
	Selectors []core.Selector

	// Store is "dict" (default) or an existing folder path.
	Store string

	Environment string
	SkipInstall bool
	ProfilePath string
	Reporter    ErrorReporter
}

type DiagnoseResult struct {
	Results   map[string]types.PackageResult
	StoreKind types.StoreKind
	StoreDir  string
}

// DiagnoseOptions configures a single-package run.
type DiagnoseOptions struct {
	Environment string
	SkipInstall bool
	Reporter    ErrorReporter
}

type InfoRequest struct {
	Package string
	Raw     bool
}

type InfoResult struct {
	Metadata      types.PackageMetadata
	Document      map[string]any
	LatestVersion string
	LastRelease   types.ReleaseFile
	HasRelease    bool
}

type NamesRefreshResult struct {
	Count     int
	CachePath string
}

type NamesContainsResult struct {
	Name     string
	Contains bool
}

type WordsRequest struct {
	Pattern     string
	Dictionary  string
	ListMatches bool
}

type WordsResult struct {
	Stats     core.WordStats
	FreeWords []string
	Matches   []string
}

type EnvRequest struct {
	Name    string
	BaseDir string
}

type EnvResult struct {
	Path    string
	Exists  bool
	Manager types.EnvManager
	Current string
}
