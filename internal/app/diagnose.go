package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pip-doctor/internal/adapters"
	"pip-doctor/internal/core"
	"pip-doctor/internal/ports"
	"pip-doctor/internal/types"
)

// DiagnosePackages resolves the package list, the diagnosis set, and
// the result store, then runs the install/diagnose/uninstall lifecycle
// once per package. Configuration errors (unknown diagnosis name,
// unusable store) abort before any package is touched; per-diagnosis
// failures never do.
func (s Service) DiagnosePackages(ctx context.Context, req DiagnoseRequest) (DiagnoseResult, error) {
	req, err := s.applyProfile(ctx, req)
	if err != nil {
		return DiagnoseResult{}, err
	}

	pkgs, err := resolvePackages(req.Packages)
	if err != nil {
		return DiagnoseResult{}, err
	}

	selectors := req.Selectors
	if len(selectors) == 0 {
		selectors = core.SelectorsFromNames(req.Diagnoses)
	}
	set, err := core.DefaultDiagnoses(s.Probes, req.Environment).Resolve(selectors)
	if err != nil {
		return DiagnoseResult{}, err
	}

	store, kind, dir, err := s.resolveStore(req.Store)
	if err != nil {
		return DiagnoseResult{}, err
	}

	opts := DiagnoseOptions{
		Environment: req.Environment,
		SkipInstall: req.SkipInstall,
		Reporter:    req.Reporter,
	}
	results := make(map[string]types.PackageResult, len(pkgs))
	for _, pkg := range pkgs {
		result := s.DiagnosePackage(ctx, pkg, set, opts)
		results[pkg] = result
		if err := store.Put(pkg, result); err != nil {
			return DiagnoseResult{}, err
		}
	}
	return DiagnoseResult{Results: results, StoreKind: kind, StoreDir: dir}, nil
}

// DiagnosePackage runs one package through the lifecycle: lease
// (install if absent), run every diagnosis inside a failure boundary,
// release (uninstall only what this run installed). The release step
// runs on every exit path.
func (s Service) DiagnosePackage(ctx context.Context, pkg string, set *core.DiagnosisSet, opts DiagnoseOptions) types.PackageResult {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = defaultErrorReporter
	}

	if !opts.SkipInstall {
		wasInstalled := s.Installer.IsInstalled(ctx, pkg, opts.Environment)
		if !wasInstalled {
			outcome := s.Installer.Install(ctx, pkg, opts.Environment)
			if !outcome.Succeeded() {
				log.Warn().
					Str("package", pkg).
					Str("detail", outcome.Detail).
					Msg("proceeding despite failed install")
			}
			defer func() {
				released := s.Installer.Uninstall(ctx, pkg)
				if !released.Succeeded() {
					log.Warn().
						Str("package", pkg).
						Str("detail", released.Detail).
						Msg("failed to uninstall package after diagnosis")
				}
			}()
		}
	}

	results := make(types.PackageResult, set.Len())
	for _, name := range set.Names() {
		fn, _ := set.Get(name)
		value, err := runDiagnosis(ctx, fn, pkg)
		if err != nil {
			reporter(pkg, name, err)
			continue
		}
		results[name] = value
	}
	return results
}

// runDiagnosis isolates one probe: a panic is reported the same way as
// a returned error.
func runDiagnosis(ctx context.Context, fn core.DiagnosisFunc, pkg string) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("diagnosis panicked: %v", r)
		}
	}()
	return fn(ctx, pkg)
}

func defaultErrorReporter(pkg string, diagnosis string, err error) {
	log.Error().
		Str("package", pkg).
		Str("diagnosis", diagnosis).
		Err(err).
		Msg("diagnosis failed")
}

// applyProfile fills request fields the caller left unset from the
// profile file, when one was given.
func (s Service) applyProfile(ctx context.Context, req DiagnoseRequest) (DiagnoseRequest, error) {
	if req.ProfilePath == "" {
		return req, nil
	}
	profile, err := s.Profiles.Load(req.ProfilePath)
	if err != nil {
		return DiagnoseRequest{}, err
	}
	if err := core.ValidateProfile(ctx, profile); err != nil {
		return DiagnoseRequest{}, err
	}
	if len(req.Packages) == 0 {
		if len(profile.Packages) > 0 {
			req.Packages = profile.Packages
		} else {
			req.Packages = []string{profile.Requirements}
		}
	}
	if len(req.Diagnoses) == 0 {
		req.Diagnoses = profile.Diagnoses
	}
	if req.Store == "" {
		req.Store = profile.Store
	}
	if req.Environment == "" {
		req.Environment = profile.Environment
	}
	req.SkipInstall = req.SkipInstall || profile.SkipInstall
	return req, nil
}

// resolvePackages accepts literal names, whitespace-joined name lists,
// and a path to a line-oriented requirements file.
func resolvePackages(inputs []string) ([]string, error) {
	if len(inputs) == 1 {
		if info, err := os.Stat(inputs[0]); err == nil && !info.IsDir() {
			return readRequirementsFile(inputs[0])
		}
	}
	var pkgs []string
	for _, input := range inputs {
		pkgs = append(pkgs, strings.Fields(input)...)
	}
	if len(pkgs) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no packages to diagnose")
	}
	return pkgs, nil
}

func readRequirementsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("requirements file not found").
			WithCause(err)
	}
	var pkgs []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pkgs = append(pkgs, line)
	}
	if len(pkgs) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("requirements file lists no packages")
	}
	return pkgs, nil
}

// resolveStore maps the CLI store selector to a concrete store.
func (s Service) resolveStore(selector string) (ports.ResultStorePort, types.StoreKind, string, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" || selector == string(types.StoreKindMemory) {
		return adapters.NewMemoryStore(), types.StoreKindMemory, "", nil
	}
	if info, err := os.Stat(selector); err == nil && info.IsDir() {
		return adapters.NewJSONDirStore(selector), types.StoreKindFolder, selector, nil
	}
	return nil, "", "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unknown store selector (if it's a folder, it doesn't exist): %s", selector))
}
