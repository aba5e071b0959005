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

const sampleProfile = `api_version: v1
packages:
  - six
  - attrs
diagnoses:
  - import_diagnosis
  - folder_diagnosis
store: dict
environment: /opt/envs/probe
skip_install: true
`

func TestProfileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleProfile), 0644))

	profile, err := NewProfileFileAdapter().Load(path)
	require.NoError(t, err)

	want := types.DiagnosisProfile{
		APIVersion:  "v1",
		Packages:    []string{"six", "attrs"},
		Diagnoses:   []string{"import_diagnosis", "folder_diagnosis"},
		Store:       "dict",
		Environment: "/opt/envs/probe",
		SkipInstall: true,
	}
	if diff := cmp.Diff(want, profile); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileLoadMissingFile(t *testing.T) {
	_, err := NewProfileFileAdapter().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestProfileLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages: [unclosed"), 0644))

	_, err := NewProfileFileAdapter().Load(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
