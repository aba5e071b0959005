package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pip-doctor/internal/ports"
	"pip-doctor/internal/types"
)

// Built-in diagnosis names. These are also the keys under which each
// probe's result appears in a package's result map.
const (
	DiagnosisJSONInfo    = "json_info"
	DiagnosisAllJSONInfo = "all_json_info"
	DiagnosisImport      = "import_diagnosis"
	DiagnosisFolder      = "folder_diagnosis"
	DiagnosisTests       = "test_diagnosis"
)

// DiagnosisFunc is one probe: package name in, arbitrary result out.
// A nil result with a nil error means the probe could not inspect its
// subject; the orchestrator records null under the probe's name.
type DiagnosisFunc func(ctx context.Context, pkg string) (any, error)

// Selector names a diagnosis to run. When Run is nil the name is
// looked up against the default set; otherwise the pair is used as-is.
type Selector struct {
	Name string
	Run  DiagnosisFunc
}

// DiagnosisSet is an ordered name-to-probe mapping. There is no
// package-level registry: callers construct a set (usually via
// DefaultDiagnoses) and pass it through explicitly.
type DiagnosisSet struct {
	order []string
	funcs map[string]DiagnosisFunc
}

func NewDiagnosisSet() *DiagnosisSet {
	return &DiagnosisSet{funcs: map[string]DiagnosisFunc{}}
}

// Add registers fn under name. A duplicate name keeps its original
// position and takes the new function (last write wins).
func (s *DiagnosisSet) Add(name string, fn DiagnosisFunc) {
	if _, ok := s.funcs[name]; !ok {
		s.order = append(s.order, name)
	}
	s.funcs[name] = fn
}

// Names returns the diagnosis names in registration order.
func (s *DiagnosisSet) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *DiagnosisSet) Get(name string) (DiagnosisFunc, bool) {
	fn, ok := s.funcs[name]
	return fn, ok
}

func (s *DiagnosisSet) Len() int {
	return len(s.order)
}

// Resolve turns a heterogeneous selector list into a concrete ordered
// set. Bare names are looked up against s; an unknown name fails
// immediately so a misconfigured run aborts before any package is
// touched. An empty selector list selects everything in s.
func (s *DiagnosisSet) Resolve(selectors []Selector) (*DiagnosisSet, error) {
	resolved := NewDiagnosisSet()
	if len(selectors) == 0 {
		for _, name := range s.order {
			resolved.Add(name, s.funcs[name])
		}
		return resolved, nil
	}
	for _, selector := range selectors {
		if selector.Name == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("diagnosis name must not be empty")
		}
		if selector.Run != nil {
			resolved.Add(selector.Name, selector.Run)
			continue
		}
		fn, ok := s.funcs[selector.Name]
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unknown diagnosis name: %s", selector.Name))
		}
		resolved.Add(selector.Name, fn)
	}
	return resolved, nil
}

// SelectorsFromNames wraps bare name strings for Resolve.
func SelectorsFromNames(names []string) []Selector {
	out := make([]Selector, 0, len(names))
	for _, name := range names {
		out = append(out, Selector{Name: name})
	}
	return out
}

// DefaultDiagnoses builds the standard diagnosis set from probes bound
// to the environment at env. Registration order is the run order.
func DefaultDiagnoses(probes ports.ProbePort, env string) *DiagnosisSet {
	set := NewDiagnosisSet()
	set.Add(DiagnosisJSONInfo, func(ctx context.Context, pkg string) (any, error) {
		return liftResult(probes.JSONInfo(ctx, pkg))
	})
	set.Add(DiagnosisImport, func(ctx context.Context, pkg string) (any, error) {
		return liftResult(probes.ImportDiagnosis(ctx, pkg, env))
	})
	set.Add(DiagnosisFolder, func(ctx context.Context, pkg string) (any, error) {
		return liftResult(probes.FolderDiagnosis(ctx, pkg, env))
	})
	set.Add(DiagnosisTests, func(ctx context.Context, pkg string) (any, error) {
		return liftResult(probes.TestDiagnosis(ctx, pkg, env))
	})
	set.Add(DiagnosisAllJSONInfo, func(ctx context.Context, pkg string) (any, error) {
		return liftResult(probes.AllJSONInfo(ctx, pkg))
	})
	return set
}

// liftResult converts a typed probe result to the untyped diagnosis
// value, mapping a nil map to a true nil interface so absent results
// serialize as null.
func liftResult(result types.DiagnosisResult, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result, nil
}
