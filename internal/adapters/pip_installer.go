package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"pip-doctor/internal/ports"
	"pip-doctor/internal/shared"
	"pip-doctor/internal/types"
)

type PipInstallerAdapter struct {
	// GlobalPip is the pip used when no environment is given and for
	// every uninstall; defaults to pip on PATH.
	GlobalPip string
}

func NewPipInstallerAdapter() PipInstallerAdapter {
	return PipInstallerAdapter{GlobalPip: "pip"}
}

func (a PipInstallerAdapter) Install(ctx context.Context, pkg string, env string) types.InstallOutcome {
	cmd := exec.CommandContext(ctx, a.pipPath(env), "install", pkg)
	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Warn().
			Str("package", pkg).
			Str("environment", env).
			Err(shared.CommandError(output, err)).
			Msg("pip install failed")
		return types.InstallOutcome{
			Status: types.OutcomeFailed,
			Detail: strings.TrimSpace(string(output)),
		}
	}
	return types.InstallOutcome{Status: types.OutcomeSucceeded}
}

func (a PipInstallerAdapter) IsInstalled(ctx context.Context, pkg string, env string) bool {
	cmd := exec.CommandContext(ctx, a.pipPath(env), "show", pkg)
	return cmd.Run() == nil
}

// Uninstall runs the pip found on PATH, not the environment's copy.
// Install is environment-scoped, uninstall is not; the asymmetry is
// part of the documented contract.
func (a PipInstallerAdapter) Uninstall(ctx context.Context, pkg string) types.InstallOutcome {
	cmd := exec.CommandContext(ctx, a.globalPip(), "uninstall", "-y", pkg)
	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Warn().
			Str("package", pkg).
			Err(shared.CommandError(output, err)).
			Msg("pip uninstall failed")
		return types.InstallOutcome{
			Status: types.OutcomeFailed,
			Detail: strings.TrimSpace(string(output)),
		}
	}
	return types.InstallOutcome{Status: types.OutcomeSucceeded}
}

func (a PipInstallerAdapter) pipPath(env string) string {
	if strings.TrimSpace(env) == "" {
		return a.globalPip()
	}
	return envBinary(env, "pip")
}

func (a PipInstallerAdapter) globalPip() string {
	if a.GlobalPip == "" {
		return "pip"
	}
	return a.GlobalPip
}

var _ ports.InstallerPort = PipInstallerAdapter{}
