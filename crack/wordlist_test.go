package crack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadWordlist(t *testing.T) {
	path := writeWordlist(t, "wrong1\n  secret  \n\n\t\nwrong2\nwrong1\n")

	words, err := LoadWordlist(path)
	require.NoError(t, err)
	// Order preserved, whitespace trimmed, blank lines dropped, no dedup.
	assert.Equal(t, []string{"wrong1", "secret", "wrong2", "wrong1"}, words)
}

func TestLoadWordlistEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"only blank lines", "\n\n   \n\t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := LoadWordlist(writeWordlist(t, tt.content))
			// Nothing to try is not an error, it is an empty sequence.
			require.NoError(t, err)
			assert.Empty(t, words)
		})
	}
}

func TestLoadWordlistUnavailable(t *testing.T) {
	_, err := LoadWordlist(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestCommonSecrets(t *testing.T) {
	words := CommonSecrets()
	assert.NotEmpty(t, words)
	assert.Equal(t, "secret", words[0])
	for _, w := range words {
		assert.NotEmpty(t, w)
	}
}
