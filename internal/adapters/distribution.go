package adapters

import (
	"bufio"
	"context"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pip-doctor/internal/shared"
)

// DistLocatorAdapter resolves where an installed distribution lives on
// disk by asking pip for its metadata.
type DistLocatorAdapter struct {
	// GlobalPip is used when no environment is given.
	GlobalPip string
}

func NewDistLocatorAdapter() DistLocatorAdapter {
	return DistLocatorAdapter{GlobalPip: "pip"}
}

// Location returns the package's code folder: pip's reported install
// location joined with the distribution's module folder name.
func (a DistLocatorAdapter) Location(ctx context.Context, pkg string, env string) (string, error) {
	pip := a.GlobalPip
	if pip == "" {
		pip = "pip"
	}
	if strings.TrimSpace(env) != "" {
		pip = envBinary(env, "pip")
	}
	cmd := exec.CommandContext(ctx, pip, "show", pkg)
	output, err := cmd.Output()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("distribution not found: " + pkg).
			WithCause(err)
	}
	location := parseShowLocation(string(output))
	if location == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("distribution has no location: " + pkg)
	}
	return filepath.Join(location, shared.ModuleName(pkg)), nil
}

func parseShowLocation(output string) string {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "Location:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Location:"))
		}
	}
	return ""
}

// FolderStats walks folder recursively, totaling files and bytes.
func FolderStats(folder string) (int, int64, error) {
	var totalFiles int
	var totalBytes int64
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		totalFiles++
		totalBytes += info.Size()
		return nil
	})
	if err != nil {
		return 0, 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to walk package folder").
			WithCause(err)
	}
	return totalFiles, totalBytes, nil
}
