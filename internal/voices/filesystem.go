package voices

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/temirov/voicecheck/internal/filesystem"
	"github.com/temirov/voicecheck/internal/inventory"
)

const (
	hiddenEntryPrefixConstant = "."
	readmeFileNameConstant    = "README"
)

// DefaultIgnoredFiles lists file names that never count as voice assets.
func DefaultIgnoredFiles() []string {
	return []string{readmeFileNameConstant}
}

// Scanner lists the voice files present under a voices root.
type Scanner struct {
	fileSystem   filesystem.FileSystem
	voicesRoot   string
	ignoredFiles map[string]struct{}
}

// NewScanner constructs a voices scanner. A nil ignore list applies DefaultIgnoredFiles.
func NewScanner(fileSystem filesystem.FileSystem, voicesRoot string, ignoredFiles []string) *Scanner {
	if ignoredFiles == nil {
		ignoredFiles = DefaultIgnoredFiles()
	}
	ignored := make(map[string]struct{}, len(ignoredFiles))
	for _, fileName := range ignoredFiles {
		ignored[fileName] = struct{}{}
	}
	return &Scanner{
		fileSystem:   filesystem.Resolve(fileSystem),
		voicesRoot:   voicesRoot,
		ignoredFiles: ignored,
	}
}

// Files returns the entries of <voices root>/<locale>/<category>. A missing
// directory yields an empty set.
func (scanner *Scanner) Files(locale string, category inventory.Category) inventory.FileSet {
	files := inventory.NewFileSet()
	entries, readError := scanner.fileSystem.ReadDir(filepath.Join(scanner.voicesRoot, locale, string(category)))
	if readError != nil {
		return files
	}
	for _, entry := range entries {
		if _, ignored := scanner.ignoredFiles[entry.Name()]; ignored {
			continue
		}
		files.Add(entry.Name())
	}
	return files
}

// Locales returns the sorted names of the real, non-hidden directories of the
// voices root. Symbolic links are not followed.
func (scanner *Scanner) Locales() ([]string, error) {
	entries, readError := scanner.fileSystem.ReadDir(scanner.voicesRoot)
	if readError != nil {
		return nil, readError
	}

	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), hiddenEntryPrefixConstant) {
			continue
		}
		info, statError := scanner.fileSystem.Lstat(filepath.Join(scanner.voicesRoot, entry.Name()))
		if statError != nil || !info.IsDir() {
			continue
		}
		locales = append(locales, entry.Name())
	}
	sort.Strings(locales)
	return locales, nil
}

// HasLocale reports whether voices exist for the locale or, failing that, for
// its region-less form.
func (scanner *Scanner) HasLocale(locale string) bool {
	if filesystem.IsDirectory(scanner.fileSystem, filepath.Join(scanner.voicesRoot, locale)) {
		return true
	}
	shortened, _, _ := strings.Cut(locale, "_")
	return filesystem.IsDirectory(scanner.fileSystem, filepath.Join(scanner.voicesRoot, shortened))
}
