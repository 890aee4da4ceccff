package voices_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/voicecheck/internal/inventory"
	"github.com/temirov/voicecheck/internal/voices"
)

const voicesDirectoryPermissions = 0o755

func createVoiceFiles(testInstance *testing.T, voicesRoot string, locale string, category inventory.Category, fileNames ...string) {
	testInstance.Helper()
	categoryDirectory := filepath.Join(voicesRoot, locale, string(category))
	require.NoError(testInstance, os.MkdirAll(categoryDirectory, voicesDirectoryPermissions))
	for _, fileName := range fileNames {
		require.NoError(testInstance, os.WriteFile(filepath.Join(categoryDirectory, fileName), []byte("ogg"), 0o600))
	}
}

func TestScannerFiles(testInstance *testing.T) {
	voicesRoot := testInstance.TempDir()
	createVoiceFiles(testInstance, voicesRoot, "fr", inventory.CategoryIntro, "ball.ogg", "README", "click.ogg")

	scanner := voices.NewScanner(nil, voicesRoot, nil)
	require.Equal(testInstance, []string{"ball.ogg", "click.ogg"}, scanner.Files("fr", inventory.CategoryIntro).Sorted())
	require.Empty(testInstance, scanner.Files("fr", inventory.CategoryWords))
	require.Empty(testInstance, scanner.Files("de", inventory.CategoryIntro))
}

func TestScannerLocales(testInstance *testing.T) {
	voicesRoot := testInstance.TempDir()
	createVoiceFiles(testInstance, voicesRoot, "fr", inventory.CategoryIntro)
	createVoiceFiles(testInstance, voicesRoot, "en", inventory.CategoryMisc)
	require.NoError(testInstance, os.Mkdir(filepath.Join(voicesRoot, ".git"), voicesDirectoryPermissions))
	require.NoError(testInstance, os.WriteFile(filepath.Join(voicesRoot, "Makefile"), []byte("all:"), 0o600))
	require.NoError(testInstance, os.Symlink(filepath.Join(voicesRoot, "fr"), filepath.Join(voicesRoot, "fr_FR")))

	scanner := voices.NewScanner(nil, voicesRoot, nil)
	locales, localesError := scanner.Locales()
	require.NoError(testInstance, localesError)
	require.Equal(testInstance, []string{"en", "fr"}, locales)
}

func TestScannerHasLocale(testInstance *testing.T) {
	voicesRoot := testInstance.TempDir()
	createVoiceFiles(testInstance, voicesRoot, "pt", inventory.CategoryIntro)

	scanner := voices.NewScanner(nil, voicesRoot, nil)
	require.True(testInstance, scanner.HasLocale("pt"))
	require.True(testInstance, scanner.HasLocale("pt_BR"))
	require.False(testInstance, scanner.HasLocale("de_DE"))
}
