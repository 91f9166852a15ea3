package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReadFile returns the content of a file the code under test was expected
// to write.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "expected file %s to exist", path)
	return string(data)
}

// AssertNoFile fails if path exists.
func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "expected %s not to exist", path)
}
