package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pip-doctor/internal/ports"
	"pip-doctor/internal/types"
)

type ProfileFileAdapter struct{}

func NewProfileFileAdapter() ProfileFileAdapter {
	return ProfileFileAdapter{}
}

func (a ProfileFileAdapter) Load(path string) (types.DiagnosisProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.DiagnosisProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("profile file not found").
			WithCause(err)
	}
	var profile types.DiagnosisProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return types.DiagnosisProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse profile yaml").
			WithCause(err)
	}
	return profile, nil
}

var _ ports.ProfilePort = ProfileFileAdapter{}
