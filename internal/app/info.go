package app

import (
	"context"

	"pip-doctor/internal/core"
)

// Info fetches a package's index metadata and derives the latest
// non-prerelease version. A package absent from the index yields an
// empty result, not an error.
func (s Service) Info(ctx context.Context, req InfoRequest) (InfoResult, error) {
	metadata, err := s.Index.PackageMetadata(ctx, req.Package)
	if err != nil {
		return InfoResult{}, err
	}
	result := InfoResult{
		Metadata:      metadata,
		LatestVersion: core.LatestVersion(metadata.Releases),
	}
	if release, ok := core.LatestReleaseFile(metadata); ok {
		result.LastRelease = release
		result.HasRelease = true
	}
	if req.Raw {
		document, err := s.Index.PackageDocument(ctx, req.Package)
		if err != nil {
			return InfoResult{}, err
		}
		result.Document = document
	}
	return result, nil
}
