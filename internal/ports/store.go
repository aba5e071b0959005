package ports

import "pip-doctor/internal/types"

// ResultStorePort is a keyed sink for per-package diagnosis results.
type ResultStorePort interface {
	Put(key string, value types.PackageResult) error
	Get(key string) (types.PackageResult, error)
}
