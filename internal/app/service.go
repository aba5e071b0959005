package app

import (
	"os"
	"path/filepath"
	"time"

	"pip-doctor/internal/adapters"
	"pip-doctor/internal/ports"
)

type Service struct {
	Environment ports.EnvironmentPort
	Installer   ports.InstallerPort
	Probes      ports.ProbePort
	Index       ports.IndexPort
	NameStub    ports.NameStubPort
	Profiles    ports.ProfilePort
	WordLists   ports.WordListPort
	Clock       func() time.Time
}

func NewService() Service {
	index := adapters.NewIndexClientAdapter()
	return Service{
		Environment: adapters.NewEnvironmentAdapter(),
		Installer:   adapters.NewPipInstallerAdapter(),
		Probes:      adapters.NewProbesAdapter(adapters.NewDistLocatorAdapter(), index),
		Index:       index,
		NameStub:    adapters.NewNameStubAdapter(defaultNameStubCachePath()),
		Profiles:    adapters.NewProfileFileAdapter(),
		WordLists:   adapters.NewWordListAdapter(),
		Clock:       time.Now,
	}
}

func defaultNameStubCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "pip-doctor", "pkg_names.json")
}
