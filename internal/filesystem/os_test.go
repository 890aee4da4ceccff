package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/voicecheck/internal/filesystem"
)

func TestIsDirectory(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	directoryPath := filepath.Join(rootDirectory, "fr")
	filePath := filepath.Join(rootDirectory, "README")

	require.NoError(testInstance, os.Mkdir(directoryPath, 0o755))
	require.NoError(testInstance, os.WriteFile(filePath, []byte("readme"), 0o600))

	require.True(testInstance, filesystem.IsDirectory(nil, directoryPath))
	require.False(testInstance, filesystem.IsDirectory(nil, filePath))
	require.False(testInstance, filesystem.IsDirectory(filesystem.OSFileSystem{}, filepath.Join(rootDirectory, "missing")))
}
