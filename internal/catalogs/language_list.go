package catalogs

import (
	"bufio"
	"errors"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/temirov/voicecheck/internal/inventory"
)

const (
	languageListRelativePathConstant = "src/core/LanguageList.qml"
	localeEncodingSeparatorConstant  = "."
	systemLocaleConstant             = "system"
	defaultLocaleConstant            = "en_US"
)

var localeDeclarationPattern = regexp.MustCompile(`.*"locale":.*"(.*)"`)

// LanguageListPath returns the location of the locale declarations inside a source tree.
func LanguageListPath(sourceRoot string) string {
	return filepath.Join(sourceRoot, filepath.FromSlash(languageListRelativePathConstant))
}

// ConfiguredLocales returns the sorted locales declared by LanguageList.qml,
// without encoding suffixes and without the system and en_US entries. An
// unreadable declaration file yields no locales and a notice.
func (scanner *Scanner) ConfiguredLocales() ([]string, []inventory.Notice) {
	languageListPath := LanguageListPath(scanner.sourceRoot)

	file, openError := scanner.fileSystem.Open(languageListPath)
	if openError != nil {
		return []string{}, []inventory.Notice{languageListNotice(languageListPath, openError)}
	}
	defer file.Close()

	unique := make(map[string]struct{})
	lineScanner := bufio.NewScanner(file)
	for lineScanner.Scan() {
		match := localeDeclarationPattern.FindStringSubmatch(lineScanner.Text())
		if match == nil {
			continue
		}
		locale, _, _ := strings.Cut(match[1], localeEncodingSeparatorConstant)
		if locale == systemLocaleConstant || locale == defaultLocaleConstant {
			continue
		}
		unique[locale] = struct{}{}
	}
	if scanError := lineScanner.Err(); scanError != nil {
		return []string{}, []inventory.Notice{languageListNotice(languageListPath, scanError)}
	}

	locales := make([]string, 0, len(unique))
	for locale := range unique {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales, nil
}

func languageListNotice(languageListPath string, failure error) inventory.Notice {
	reason := failure.Error()
	var pathError *fs.PathError
	if errors.As(failure, &pathError) {
		reason = pathError.Err.Error()
	}
	return inventory.Notice{
		Kind:   inventory.NoticeLanguageListUnreadable,
		Path:   languageListPath,
		Reason: reason,
	}
}
