package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePipName(t *testing.T) {
	assert.Equal(t, "foo-bar", NormalizePipName("Foo_Bar"))
	assert.Equal(t, "foo-bar", NormalizePipName("foo.bar"))
	assert.Equal(t, "six", NormalizePipName("  Six  "))
}

func TestModuleName(t *testing.T) {
	assert.Equal(t, "python_dateutil", ModuleName("python-dateutil"))
	assert.Equal(t, "six", ModuleName(" six "))
}

func TestCommandErrorKeepsOutput(t *testing.T) {
	base := errors.New("exit status 1")
	err := CommandError([]byte("  something broke  \n"), base)
	assert.Contains(t, err.Error(), "something broke")
	assert.ErrorIs(t, err, base)
}

func TestCommandErrorEmptyOutput(t *testing.T) {
	base := errors.New("exit status 1")
	assert.Equal(t, base, CommandError([]byte("   \n"), base))
}

func TestHTTPStatusError(t *testing.T) {
	err := HTTPStatusError(503, "https://example.org")
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "https://example.org")
}
