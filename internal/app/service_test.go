package app

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pip-doctor/internal/types"
)

type fakeIndex struct {
	metadata types.PackageMetadata
	document map[string]any
}

func (f fakeIndex) PackageMetadata(_ context.Context, _ string) (types.PackageMetadata, error) {
	return f.metadata, nil
}

func (f fakeIndex) PackageDocument(_ context.Context, _ string) (map[string]any, error) {
	return f.document, nil
}

type fakeNameStub struct {
	cached       []string
	fresh        []string
	refreshCalls int
}

func (f *fakeNameStub) Refresh(_ context.Context) ([]string, error) {
	f.refreshCalls++
	f.cached = f.fresh
	return f.fresh, nil
}

func (f *fakeNameStub) Load() ([]string, error) {
	if f.cached == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("not cached")
	}
	return f.cached, nil
}

func (f *fakeNameStub) CachePath() string {
	return "/tmp/fake/pkg_names.json"
}

type fakeWordList struct {
	words []string
}

func (f fakeWordList) Load(_ string) ([]string, error) {
	return f.words, nil
}

type fakeEnvironment struct {
	current string
	created []string
}

func (f *fakeEnvironment) CurrentPath() string { return f.current }

func (f *fakeEnvironment) Exists(path string) bool {
	for _, created := range f.created {
		if created == path {
			return true
		}
	}
	return false
}

func (f *fakeEnvironment) ResolvePath(name string, baseDir string) (string, error) {
	if baseDir == "" {
		return name, nil
	}
	return baseDir + "/" + name, nil
}

func (f *fakeEnvironment) Create(_ context.Context, path string) error {
	f.created = append(f.created, path)
	return nil
}

func (f *fakeEnvironment) DetectManager(_ string) types.EnvManager {
	return types.EnvManagerVenv
}

// ---------------------------------------------------------------------------
// Info
// ---------------------------------------------------------------------------

func TestInfoDerivesLatestVersionAndRelease(t *testing.T) {
	metadata := types.PackageMetadata{
		Info: types.MetadataInfo{Name: "six", Version: "1.16.0"},
		Releases: map[string][]types.ReleaseFile{
			"1.16.0":    {{Filename: "six-1.16.0.tar.gz", Size: 34041}},
			"1.15.0":    {{Filename: "six-1.15.0.tar.gz", Size: 33922}},
			"1.17.0rc1": {{Filename: "six-1.17.0rc1.tar.gz"}},
		},
	}
	service := Service{Index: fakeIndex{metadata: metadata}}

	result, err := service.Info(context.Background(), InfoRequest{Package: "six"})
	require.NoError(t, err)
	assert.Equal(t, "1.16.0", result.LatestVersion)
	require.True(t, result.HasRelease)
	assert.Equal(t, "six-1.16.0.tar.gz", result.LastRelease.Filename)
	assert.Nil(t, result.Document)
}

func TestInfoRawIncludesDocument(t *testing.T) {
	service := Service{Index: fakeIndex{document: map[string]any{"info": map[string]any{"name": "six"}}}}

	result, err := service.Info(context.Background(), InfoRequest{Package: "six", Raw: true})
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	assert.True(t, result.Metadata.Empty())
}

// ---------------------------------------------------------------------------
// Names
// ---------------------------------------------------------------------------

func TestNamesRefresh(t *testing.T) {
	stub := &fakeNameStub{fresh: []string{"attrs", "six"}}
	service := Service{NameStub: stub}

	result, err := service.NamesRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "/tmp/fake/pkg_names.json", result.CachePath)
}

func TestNamesContainsNormalizesQuery(t *testing.T) {
	stub := &fakeNameStub{cached: []string{"zope-interface"}}
	service := Service{NameStub: stub}

	result, err := service.NamesContains(context.Background(), "Zope.Interface")
	require.NoError(t, err)
	assert.True(t, result.Contains)
	assert.Equal(t, "zope-interface", result.Name)
	assert.Equal(t, 0, stub.refreshCalls)
}

func TestNamesContainsRefreshesOnFirstUse(t *testing.T) {
	stub := &fakeNameStub{fresh: []string{"six"}}
	service := Service{NameStub: stub}

	result, err := service.NamesContains(context.Background(), "some-new-name")
	require.NoError(t, err)
	assert.False(t, result.Contains)
	assert.Equal(t, 1, stub.refreshCalls)
}

// ---------------------------------------------------------------------------
// Words
// ---------------------------------------------------------------------------

func TestWordsComparesDictionaryAgainstNames(t *testing.T) {
	service := Service{
		WordLists: fakeWordList{words: []string{"apple", "banana", "cherry"}},
		NameStub:  &fakeNameStub{cached: []string{"banana", "django"}},
	}

	result, err := service.Words(context.Background(), WordsRequest{Dictionary: "words"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Stats.Words)
	assert.Equal(t, 2, result.Stats.Names)
	assert.Equal(t, 1, result.Stats.Both)
	if diff := cmp.Diff([]string{"apple", "cherry"}, result.FreeWords); diff != "" {
		t.Errorf("free words mismatch (-want +got):\n%s", diff)
	}
}

func TestWordsWithPatternListsMatches(t *testing.T) {
	service := Service{
		WordLists: fakeWordList{words: []string{"ant", "bee", "bat"}},
		NameStub:  &fakeNameStub{cached: []string{"bee"}},
	}

	result, err := service.Words(context.Background(), WordsRequest{
		Pattern:     "b..",
		Dictionary:  "words",
		ListMatches: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"bat", "bee"}, result.Matches)
	assert.Equal(t, []string{"bat"}, result.FreeWords)
}

func TestWordsInvalidPattern(t *testing.T) {
	service := Service{
		WordLists: fakeWordList{words: []string{"ant"}},
		NameStub:  &fakeNameStub{cached: []string{}},
	}

	_, err := service.Words(context.Background(), WordsRequest{Pattern: "[unclosed", Dictionary: "words"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

// ---------------------------------------------------------------------------
// Env
// ---------------------------------------------------------------------------

func TestEnvCreate(t *testing.T) {
	env := &fakeEnvironment{current: "/opt/envs/active"}
	service := Service{Environment: env}

	result, err := service.EnvCreate(context.Background(), EnvRequest{Name: "probe", BaseDir: "/opt/envs"})
	require.NoError(t, err)
	assert.Equal(t, "/opt/envs/probe", result.Path)
	assert.True(t, result.Exists)
	assert.Equal(t, types.EnvManagerVenv, result.Manager)
	assert.Equal(t, "/opt/envs/active", result.Current)
	assert.Equal(t, []string{"/opt/envs/probe"}, env.created)
}

func TestEnvInfoDoesNotCreate(t *testing.T) {
	env := &fakeEnvironment{}
	service := Service{Environment: env}

	result, err := service.EnvInfo(EnvRequest{Name: "probe", BaseDir: "/opt/envs"})
	require.NoError(t, err)
	assert.Equal(t, "/opt/envs/probe", result.Path)
	assert.False(t, result.Exists)
	assert.Empty(t, env.created)
}
