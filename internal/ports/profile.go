package ports

import "pip-doctor/internal/types"

// ProfilePort loads diagnosis profile files.
type ProfilePort interface {
	Load(path string) (types.DiagnosisProfile, error)
}

// WordListPort loads line-oriented dictionary word files.
type WordListPort interface {
	Load(path string) ([]string, error)
}
