package adapters

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pip-doctor/internal/ports"
	"pip-doctor/internal/shared"
)

const defaultSimpleIndexURL = "https://pypi.org/simple/"

// NameStubAdapter maintains a local cache of every package name on the
// index's simple listing. The listing is large and changes slowly, so
// callers refresh explicitly and read from the cache otherwise.
type NameStubAdapter struct {
	IndexURL  string
	cachePath string
	cfg       httpRetryConfig
}

func NewNameStubAdapter(cachePath string) NameStubAdapter {
	return NameStubAdapter{
		IndexURL:  defaultSimpleIndexURL,
		cachePath: cachePath,
		cfg:       normalizeHTTPConfig(0, 0, 0),
	}
}

// NewNameStubAdapterWith overrides the listing endpoint, used by tests.
func NewNameStubAdapterWith(indexURL string, cachePath string) NameStubAdapter {
	adapter := NewNameStubAdapter(cachePath)
	if strings.TrimSpace(indexURL) != "" {
		adapter.IndexURL = indexURL
	}
	return adapter
}

type nameStubCache struct {
	FetchedAt string   `json:"fetched_at"`
	Names     []string `json:"names"`
}

func (a NameStubAdapter) CachePath() string {
	return a.cachePath
}

func (a NameStubAdapter) Refresh(ctx context.Context) ([]string, error) {
	resp, err := doRequest(ctx, a.IndexURL, a.cfg)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to fetch package listing").
			WithCause(shared.HTTPStatusError(resp.StatusCode, a.IndexURL))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read package listing").
			WithCause(err)
	}
	names := parseSimpleNames(string(body))
	if len(names) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("package listing returned no names")
	}
	if err := a.writeCache(names); err != nil {
		return nil, err
	}
	log.Info().Int("count", len(names)).Str("cache", a.cachePath).Msg("refreshed package name stub")
	return names, nil
}

func (a NameStubAdapter) Load() ([]string, error) {
	data, err := os.ReadFile(a.cachePath)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package name stub not cached; run a refresh first").
			WithCause(err)
	}
	var cache nameStubCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse package name stub cache").
			WithCause(err)
	}
	return cache.Names, nil
}

func (a NameStubAdapter) writeCache(names []string) error {
	if strings.TrimSpace(a.cachePath) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("name stub cache path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(a.cachePath), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache directory").
			WithCause(err)
	}
	cache := nameStubCache{
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Names:     names,
	}
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal package name stub").
			WithCause(err)
	}
	if err := os.WriteFile(a.cachePath, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write package name stub cache").
			WithCause(err)
	}
	return nil
}

var simpleAnchorRe = regexp.MustCompile(`(?is)<a[^>]*>([^<]+)</a>`)

// parseSimpleNames extracts the anchor text of each listing entry and
// normalizes it per PEP 503.
func parseSimpleNames(content string) []string {
	matches := simpleAnchorRe.FindAllStringSubmatch(content, -1)
	seen := map[string]struct{}{}
	var names []string
	for _, match := range matches {
		name := shared.NormalizePipName(match[1])
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ ports.NameStubPort = NameStubAdapter{}
