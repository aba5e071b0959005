package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pip-doctor/internal/types"
)

// ---------------------------------------------------------------------------
// MemoryStore
// ---------------------------------------------------------------------------

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore()
	result := types.PackageResult{"import_diagnosis": map[string]any{"non_dunder_attributes_count": 12}}
	require.NoError(t, store.Put("six", result))

	got, err := store.Get("six")
	require.NoError(t, err)
	if diff := cmp.Diff(result, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get("missing")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestMemoryStoreKeysSorted(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put("zope", types.PackageResult{}))
	require.NoError(t, store.Put("attrs", types.PackageResult{}))
	require.NoError(t, store.Put("six", types.PackageResult{}))

	assert.Equal(t, []string{"attrs", "six", "zope"}, store.Keys())
}

// ---------------------------------------------------------------------------
// JSONDirStore
// ---------------------------------------------------------------------------

func TestJSONDirStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONDirStore(dir)

	// Values chosen to survive a JSON round trip unchanged: numbers come
	// back as float64 and absent probes as nil.
	result := types.PackageResult{
		"folder_diagnosis": map[string]any{
			"total_files": float64(3),
			"total_bytes": float64(1024),
		},
		"import_diagnosis": nil,
	}
	require.NoError(t, store.Put("six", result))

	got, err := store.Get("six")
	require.NoError(t, err)
	if diff := cmp.Diff(result, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONDirStoreWritesOneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONDirStore(dir)
	require.NoError(t, store.Put("six", types.PackageResult{"x": "y"}))
	require.NoError(t, store.Put("attrs", types.PackageResult{}))

	_, err := os.Stat(filepath.Join(dir, "six.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "attrs.json"))
	require.NoError(t, err)
}

func TestJSONDirStoreAbsentDiagnosisSerializesAsNull(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONDirStore(dir)
	require.NoError(t, store.Put("six", types.PackageResult{"test_diagnosis": nil}))

	data, err := os.ReadFile(filepath.Join(dir, "six.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"test_diagnosis": null`)
}

func TestJSONDirStoreGetMissing(t *testing.T) {
	store := NewJSONDirStore(t.TempDir())
	_, err := store.Get("missing")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestJSONDirStoreEmptyDirRejected(t *testing.T) {
	store := NewJSONDirStore("")
	err := store.Put("six", types.PackageResult{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
