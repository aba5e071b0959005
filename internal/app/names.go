package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pip-doctor/internal/shared"
)

// NamesRefresh fetches the index's full package listing and rewrites
// the local cache.
func (s Service) NamesRefresh(ctx context.Context) (NamesRefreshResult, error) {
	names, err := s.NameStub.Refresh(ctx)
	if err != nil {
		return NamesRefreshResult{}, err
	}
	return NamesRefreshResult{
		Count:     len(names),
		CachePath: s.NameStub.CachePath(),
	}, nil
}

// NamesContains reports whether a name is taken on the index,
// refreshing the cache on first use.
func (s Service) NamesContains(ctx context.Context, name string) (NamesContainsResult, error) {
	names, err := s.loadNames(ctx)
	if err != nil {
		return NamesContainsResult{}, err
	}
	normalized := shared.NormalizePipName(name)
	for _, candidate := range names {
		if candidate == normalized {
			return NamesContainsResult{Name: normalized, Contains: true}, nil
		}
	}
	return NamesContainsResult{Name: normalized, Contains: false}, nil
}

// loadNames reads the cached listing, fetching it once when no cache
// exists yet.
func (s Service) loadNames(ctx context.Context) ([]string, error) {
	names, err := s.NameStub.Load()
	if err == nil {
		return names, nil
	}
	if errbuilder.CodeOf(err) != errbuilder.CodeNotFound {
		return nil, err
	}
	return s.NameStub.Refresh(ctx)
}
