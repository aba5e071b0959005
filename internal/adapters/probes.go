package adapters

import (
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pip-doctor/internal/ports"
	"pip-doctor/internal/shared"
	"pip-doctor/internal/types"
)

// ProbesAdapter implements the built-in diagnosis runners. Probes are
// defensive: a package that cannot be imported or located yields a nil
// result, not an error.
type ProbesAdapter struct {
	Locator DistLocatorAdapter
	Index   ports.IndexPort
}

func NewProbesAdapter(locator DistLocatorAdapter, index ports.IndexPort) ProbesAdapter {
	return ProbesAdapter{Locator: locator, Index: index}
}

const importProbeScript = `import importlib, sys
module = importlib.import_module(sys.argv[1])
print(len([attr for attr in dir(module) if not attr.startswith('__')]))`

const doctestProbeScript = `import doctest, importlib, sys
result = doctest.testmod(importlib.import_module(sys.argv[1]))
print(result.attempted, result.failed)`

func (a ProbesAdapter) ImportDiagnosis(ctx context.Context, pkg string, env string) (types.DiagnosisResult, error) {
	cmd := exec.CommandContext(ctx, pythonPath(env), "-c", importProbeScript, shared.ModuleName(pkg))
	output, err := cmd.Output()
	if err != nil {
		log.Debug().Str("package", pkg).Err(err).Msg("import probe could not load package")
		return nil, nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("import probe produced unexpected output").
			WithCause(err)
	}
	return types.DiagnosisResult{
		"non_dunder_attributes_count": count,
	}, nil
}

func (a ProbesAdapter) FolderDiagnosis(ctx context.Context, pkg string, env string) (types.DiagnosisResult, error) {
	folder, err := a.Locator.Location(ctx, pkg, env)
	if err != nil {
		if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
			log.Debug().Str("package", pkg).Msg("folder probe found no distribution")
			return nil, nil
		}
		return nil, err
	}
	totalFiles, totalBytes, err := FolderStats(folder)
	if err != nil {
		return nil, nil
	}
	return types.DiagnosisResult{
		"total_files": totalFiles,
		"total_bytes": totalBytes,
	}, nil
}

var ranTestsRe = regexp.MustCompile(`Ran (\d+) tests?`)
var failuresRe = regexp.MustCompile(`failures=(\d+)`)
var errorsRe = regexp.MustCompile(`errors=(\d+)`)

// TestDiagnosis runs three independent sub-probes against the
// installed package. Each one that cannot produce a result is simply
// left out of the map; only a missing distribution makes the whole
// diagnosis absent.
func (a ProbesAdapter) TestDiagnosis(ctx context.Context, pkg string, env string) (types.DiagnosisResult, error) {
	folder, err := a.Locator.Location(ctx, pkg, env)
	if err != nil {
		if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
			return nil, nil
		}
		return nil, err
	}

	result := types.DiagnosisResult{}
	if doctests, ok := a.runDoctests(ctx, pkg, env); ok {
		result["doctest_results"] = doctests
	}
	if unittests, ok := a.runUnittests(ctx, folder, env); ok {
		result["unittest_results"] = unittests
	}
	if pytests, ok := a.runPytest(ctx, folder, env); ok {
		result["pytest_results"] = pytests
	}
	return result, nil
}

func (a ProbesAdapter) runDoctests(ctx context.Context, pkg string, env string) (map[string]any, bool) {
	cmd := exec.CommandContext(ctx, pythonPath(env), "-c", doctestProbeScript, shared.ModuleName(pkg))
	output, err := cmd.Output()
	if err != nil {
		return nil, false
	}
	fields := strings.Fields(strings.TrimSpace(string(output)))
	if len(fields) != 2 {
		return nil, false
	}
	attempts, err1 := strconv.Atoi(fields[0])
	failures, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return nil, false
	}
	return map[string]any{
		"attempts": attempts,
		"failures": failures,
	}, true
}

func (a ProbesAdapter) runUnittests(ctx context.Context, folder string, env string) (map[string]any, bool) {
	cmd := exec.CommandContext(ctx, pythonPath(env), "-m", "unittest", "discover", "-s", folder, "-p", "test_*.py")
	// unittest reports on stderr and exits non-zero on failing tests;
	// the report is still parseable either way.
	output, _ := cmd.CombinedOutput()
	text := string(output)
	ran := ranTestsRe.FindStringSubmatch(text)
	if ran == nil {
		return nil, false
	}
	total, err := strconv.Atoi(ran[1])
	if err != nil {
		return nil, false
	}
	return map[string]any{
		"total_tests_found": total,
		"total_failures":    firstCount(failuresRe, text),
		"total_errors":      firstCount(errorsRe, text),
	}, true
}

func (a ProbesAdapter) runPytest(ctx context.Context, folder string, env string) (map[string]any, bool) {
	cmd := exec.CommandContext(ctx, pythonPath(env), "-m", "pytest", folder, "-v")
	// pytest exits non-zero when tests fail; its stdout is still the
	// source of the pass/fail markers.
	output, err := cmd.Output()
	if len(output) == 0 && err != nil {
		return nil, false
	}
	text := string(output)
	passed := strings.Count(text, "PASSED")
	failed := strings.Count(text, "FAILED")
	return map[string]any{
		"total_tests_found":  passed + failed,
		"total_passed_tests": passed,
		"total_failed_tests": failed,
	}, true
}

func firstCount(re *regexp.Regexp, text string) int {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	count, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return count
}

// metadataPaths is the fixed field set the json_info diagnosis
// extracts from the index document.
var metadataPaths = []string{
	"info.description",
	"info.summary",
	"info.author",
	"info.version",
	"info.project_urls",
	"info.home_page",
}

func (a ProbesAdapter) JSONInfo(ctx context.Context, pkg string) (types.DiagnosisResult, error) {
	document, err := a.Index.PackageDocument(ctx, pkg)
	if err != nil {
		return nil, err
	}
	result := types.DiagnosisResult{}
	for _, path := range metadataPaths {
		result[path] = lookupPath(document, path)
	}
	releases, _ := document["releases"].(map[string]any)
	result["n_releases"] = len(releases)
	version, _ := lookupPath(document, "info.version").(string)
	if files, ok := releases[version].([]any); ok && len(files) > 0 {
		if file, ok := files[0].(map[string]any); ok {
			result["last_release.size"] = file["size"]
			result["last_release.upload_time_iso_8601"] = file["upload_time_iso_8601"]
		}
	}
	return result, nil
}

func (a ProbesAdapter) AllJSONInfo(ctx context.Context, pkg string) (types.DiagnosisResult, error) {
	document, err := a.Index.PackageDocument(ctx, pkg)
	if err != nil {
		return nil, err
	}
	return types.DiagnosisResult(document), nil
}

// lookupPath walks a dotted path through nested maps, returning nil
// when any segment is missing.
func lookupPath(document map[string]any, path string) any {
	var current any = document
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = node[segment]
		if !ok {
			return nil
		}
	}
	return current
}

var _ ports.ProbePort = ProbesAdapter{}
