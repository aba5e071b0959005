package ports

import (
	"context"

	"pip-doctor/internal/types"
)

// IndexPort fetches package metadata from the package index JSON API.
// A missing package yields an empty document, not an error.
type IndexPort interface {
	PackageMetadata(ctx context.Context, pkg string) (types.PackageMetadata, error)
	PackageDocument(ctx context.Context, pkg string) (map[string]any, error)
}

// NameStubPort maintains the locally cached list of all package names
// published on the index's simple listing.
type NameStubPort interface {
	// Refresh fetches the listing and rewrites the local cache.
	Refresh(ctx context.Context) ([]string, error)

	// Load reads the cached listing without touching the network.
	Load() ([]string, error)

	// CachePath returns where the listing is cached on disk.
	CachePath() string
}
