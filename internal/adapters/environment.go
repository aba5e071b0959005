package adapters

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pip-doctor/internal/ports"
	"pip-doctor/internal/shared"
	"pip-doctor/internal/types"
)

// virtualEnvVar is set by venv/virtualenv activation scripts.
const virtualEnvVar = "VIRTUAL_ENV"

type EnvironmentAdapter struct {
	// PythonBin creates environments; defaults to python3 on PATH.
	PythonBin string
}

func NewEnvironmentAdapter() EnvironmentAdapter {
	return EnvironmentAdapter{PythonBin: "python3"}
}

func (a EnvironmentAdapter) CurrentPath() string {
	return os.Getenv(virtualEnvVar)
}

func (a EnvironmentAdapter) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (a EnvironmentAdapter) ResolvePath(name string, baseDir string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("environment name is required")
	}
	expanded, err := expandUser(name)
	if err != nil {
		return "", err
	}
	joined := expanded
	if !filepath.IsAbs(expanded) && baseDir != "" {
		base, err := expandUser(baseDir)
		if err != nil {
			return "", err
		}
		joined = filepath.Join(base, expanded)
	}
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve environment path").
			WithCause(err)
	}
	return abs, nil
}

func (a EnvironmentAdapter) Create(ctx context.Context, path string) error {
	if a.Exists(path) {
		log.Debug().Str("path", path).Msg("virtual environment already exists")
		return nil
	}
	log.Info().Str("path", path).Msg("creating virtual environment")
	python := a.PythonBin
	if python == "" {
		python = "python3"
	}
	cmd := exec.CommandContext(ctx, python, "-m", "venv", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create virtual environment").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func (a EnvironmentAdapter) DetectManager(path string) types.EnvManager {
	if _, err := os.Stat(filepath.Join(path, "pyvenv.cfg")); err == nil {
		return types.EnvManagerVenv
	}
	if _, err := os.Stat(filepath.Join(path, ".python-version")); err == nil {
		return types.EnvManagerPyenv
	}
	return types.EnvManagerUnknown
}

func expandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve home directory").
			WithCause(err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

var _ ports.EnvironmentPort = EnvironmentAdapter{}
