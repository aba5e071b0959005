package core

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pip-doctor/internal/types"
)

func TestValidateProfileWithPackages(t *testing.T) {
	profile := types.DiagnosisProfile{
		APIVersion: "v1",
		Packages:   []string{"six", "requests"},
	}
	require.NoError(t, ValidateProfile(context.Background(), profile))
}

func TestValidateProfileWithRequirements(t *testing.T) {
	profile := types.DiagnosisProfile{
		APIVersion:   "v1",
		Requirements: "requirements.txt",
	}
	require.NoError(t, ValidateProfile(context.Background(), profile))
}

func TestValidateProfileRejectsNeitherSource(t *testing.T) {
	profile := types.DiagnosisProfile{APIVersion: "v1"}
	err := ValidateProfile(context.Background(), profile)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestValidateProfileRejectsBothSources(t *testing.T) {
	profile := types.DiagnosisProfile{
		APIVersion:   "v1",
		Packages:     []string{"six"},
		Requirements: "requirements.txt",
	}
	err := ValidateProfile(context.Background(), profile)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
