package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"pip-doctor/internal/types"
)

// ValidateProfile checks a loaded diagnosis profile before any package
// is touched.
func ValidateProfile(ctx context.Context, profile types.DiagnosisProfile) error {
	assert.NotEmpty(ctx, profile.APIVersion, "api_version must be set")
	if len(profile.Packages) == 0 && profile.Requirements == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profile must list packages or a requirements file")
	}
	if len(profile.Packages) > 0 && profile.Requirements != "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profile must not set both packages and requirements")
	}
	return nil
}
