package types

// OutcomeStatus classifies a best-effort package manager operation.
type OutcomeStatus string

const (
	OutcomeSucceeded OutcomeStatus = "succeeded"
	OutcomeFailed    OutcomeStatus = "failed"
)

// StoreKind selects a result store backend.
type StoreKind string

const (
	StoreKindMemory StoreKind = "dict"
	StoreKindFolder StoreKind = "folder"
)

// EnvManager identifies the tool that created a virtual environment.
type EnvManager string

const (
	EnvManagerVenv    EnvManager = "venv"
	EnvManagerPyenv   EnvManager = "pyenv"
	EnvManagerUnknown EnvManager = ""
)
