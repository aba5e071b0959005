package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnv lays out a virtual-environment-shaped directory whose bin/pip
// is a shell script.
func fakeEnv(t *testing.T, pipScript string) string {
	t.Helper()
	env := t.TempDir()
	binDir := filepath.Join(env, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "pip"), []byte(pipScript), 0755))
	return env
}

func TestInstallUsesEnvironmentPip(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	env := fakeEnv(t, "#!/bin/sh\necho \"$@\" > "+argsFile+"\nexit 0\n")

	installer := NewPipInstallerAdapter()
	outcome := installer.Install(t.Context(), "six", env)
	require.True(t, outcome.Succeeded())

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "install six", strings.TrimSpace(string(args)))
}

func TestInstallFailureCarriesDetail(t *testing.T) {
	env := fakeEnv(t, "#!/bin/sh\necho 'No matching distribution found for nosuchpkg'\nexit 1\n")

	installer := NewPipInstallerAdapter()
	outcome := installer.Install(t.Context(), "nosuchpkg", env)
	assert.False(t, outcome.Succeeded())
	assert.Contains(t, outcome.Detail, "No matching distribution found")
}

func TestIsInstalled(t *testing.T) {
	installed := fakeEnv(t, "#!/bin/sh\nexit 0\n")
	missing := fakeEnv(t, "#!/bin/sh\nexit 1\n")

	installer := NewPipInstallerAdapter()
	assert.True(t, installer.IsInstalled(t.Context(), "six", installed))
	assert.False(t, installer.IsInstalled(t.Context(), "six", missing))
}

func TestUninstallUsesGlobalPip(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	pipPath := filepath.Join(t.TempDir(), "pip")
	require.NoError(t, os.WriteFile(pipPath, []byte("#!/bin/sh\necho \"$@\" > "+argsFile+"\nexit 0\n"), 0755))

	installer := PipInstallerAdapter{GlobalPip: pipPath}
	outcome := installer.Uninstall(t.Context(), "six")
	require.True(t, outcome.Succeeded())

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "uninstall -y six", strings.TrimSpace(string(args)))
}

func TestUninstallFailureIsDataNotError(t *testing.T) {
	pipPath := filepath.Join(t.TempDir(), "pip")
	require.NoError(t, os.WriteFile(pipPath, []byte("#!/bin/sh\necho 'not installed'\nexit 1\n"), 0755))

	installer := PipInstallerAdapter{GlobalPip: pipPath}
	outcome := installer.Uninstall(t.Context(), "six")
	assert.False(t, outcome.Succeeded())
	assert.Equal(t, "not installed", outcome.Detail)
}

func TestPipPathFallsBackToGlobal(t *testing.T) {
	installer := NewPipInstallerAdapter()
	assert.Equal(t, "pip", installer.pipPath(""))
	assert.Equal(t, filepath.Join("/opt/env", "bin", "pip"), installer.pipPath("/opt/env"))
}
