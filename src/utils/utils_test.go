package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOrFolderExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, FileOrFolderExists(dir))

	filePath := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(filePath, []byte("{}"), 0644))
	assert.True(t, FileOrFolderExists(filePath))

	assert.False(t, FileOrFolderExists(filepath.Join(dir, "missing.json")))
}
