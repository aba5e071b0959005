package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pip-doctor/internal/ports"
	"pip-doctor/internal/types"
)

// MemoryStore keeps diagnosis results in an in-process map.
type MemoryStore struct {
	values map[string]types.PackageResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]types.PackageResult{}}
}

func (s *MemoryStore) Put(key string, value types.PackageResult) error {
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Get(key string) (types.PackageResult, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no result for key: " + key)
	}
	return value, nil
}

// Keys returns the stored package names sorted.
func (s *MemoryStore) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// JSONDirStore writes one JSON file per key into a folder.
type JSONDirStore struct {
	Dir string
}

func NewJSONDirStore(dir string) JSONDirStore {
	return JSONDirStore{Dir: dir}
}

func (s JSONDirStore) Put(key string, value types.PackageResult) error {
	path, err := s.ensurePath(key)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal result").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write result file").
			WithCause(err)
	}
	return nil
}

func (s JSONDirStore) Get(key string) (types.PackageResult, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, key+".json"))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no result for key: " + key).
			WithCause(err)
	}
	var value types.PackageResult
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse result file").
			WithCause(err)
	}
	return value, nil
}

func (s JSONDirStore) ensurePath(key string) (string, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("result directory is empty")
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create result directory").
			WithCause(err)
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

var _ ports.ResultStorePort = (*MemoryStore)(nil)
var _ ports.ResultStorePort = JSONDirStore{}
