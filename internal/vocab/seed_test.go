package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# starter vocabulary\ncat\n\n  dog\nfish\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	words, err := LoadWordList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "fish"}, words)
}

func TestLoadWordListMissingFile(t *testing.T) {
	_, err := LoadWordList(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
