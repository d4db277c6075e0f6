package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.txt")

	require.NoError(t, WriteFile(path, []byte("first\n"), 0600, false))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(b))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), st.Mode().Perm())

	// force skips the overwrite prompt
	require.NoError(t, WriteFile(path, []byte("second\n"), 0600, true))
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(b))
}

func TestWriteFileDir(t *testing.T) {
	dir := t.TempDir()
	err := WriteFile(dir, []byte("data"), 0600, false)
	assert.Equal(t, ErrIsDir, err)
}
