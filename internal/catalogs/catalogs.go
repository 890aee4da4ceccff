package catalogs

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chai2010/gettext-go/po"

	"github.com/temirov/voicecheck/internal/filesystem"
)

const (
	catalogDirectoryNameConstant         = "po"
	catalogLocaleSeparatorConstant       = "_"
	catalogExtensionLengthConstant       = 3
	fuzzyFlagConstant                    = "fuzzy"
	catalogFlagSeparatorConstant         = ","
	catalogListErrorTemplateConstant     = "unable to list catalogs in %s: %w"
	catalogReadErrorTemplateConstant     = "unable to read catalog %s: %w"
	catalogParseErrorTemplateConstant    = "unable to parse catalog %s: %w"
	catalogEmptyErrorTemplateConstant    = "%w: %s"
	localeRegionSeparatorConstant        = "_"
	defaultCatalogLocaleCapacityConstant = 64
)

// ErrEmptyCatalog indicates a catalog without any translatable entry, for which
// no completeness ratio exists.
var ErrEmptyCatalog = errors.New("catalog has no entries")

// TranslationStatus summarizes the completeness of one locale catalog.
type TranslationStatus struct {
	Translated   int     `yaml:"translated"`
	Untranslated int     `yaml:"untranslated"`
	Fuzzy        int     `yaml:"fuzzy"`
	Percent      float64 `yaml:"percent"`
	Team         string  `yaml:"team"`
}

// Scanner reads the gettext catalogs of a source tree.
type Scanner struct {
	fileSystem filesystem.FileSystem
	sourceRoot string
}

// NewScanner constructs a catalog scanner rooted at the source tree.
func NewScanner(fileSystem filesystem.FileSystem, sourceRoot string) *Scanner {
	return &Scanner{
		fileSystem: filesystem.Resolve(fileSystem),
		sourceRoot: sourceRoot,
	}
}

// LocaleFromCatalogName derives the locale code of a catalog file name by
// dropping everything up to the first separator and the extension, e.g.
// gcompris_pt_BR.po becomes pt_BR. Malformed names are not rejected.
func LocaleFromCatalogName(catalogName string) string {
	remainder := catalogName
	if _, afterSeparator, found := strings.Cut(catalogName, catalogLocaleSeparatorConstant); found {
		remainder = afterSeparator
	}
	characters := []rune(remainder)
	if len(characters) < catalogExtensionLengthConstant {
		return ""
	}
	return string(characters[:len(characters)-catalogExtensionLengthConstant])
}

// ShortLocale strips the region suffix of a locale code, e.g. pt_BR becomes pt.
func ShortLocale(locale string) string {
	shortened, _, _ := strings.Cut(locale, localeRegionSeparatorConstant)
	return shortened
}

// Locales returns the sorted locale codes for which a catalog exists.
func (scanner *Scanner) Locales() ([]string, error) {
	catalogNames, listError := scanner.catalogNames()
	if listError != nil {
		return nil, listError
	}

	unique := make(map[string]struct{}, len(catalogNames))
	locales := make([]string, 0, len(catalogNames))
	for _, catalogName := range catalogNames {
		locale := LocaleFromCatalogName(catalogName)
		if _, seen := unique[locale]; seen {
			continue
		}
		unique[locale] = struct{}{}
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales, nil
}

// TranslationStatuses parses every catalog and returns completeness keyed by locale.
// An empty catalog aborts the scan with ErrEmptyCatalog.
func (scanner *Scanner) TranslationStatuses() (map[string]TranslationStatus, error) {
	catalogNames, listError := scanner.catalogNames()
	if listError != nil {
		return nil, listError
	}

	statuses := make(map[string]TranslationStatus, defaultCatalogLocaleCapacityConstant)
	for _, catalogName := range catalogNames {
		catalogPath := filepath.Join(scanner.catalogDirectory(), catalogName)
		status, statusError := scanner.translationStatus(catalogPath)
		if statusError != nil {
			return nil, statusError
		}
		statuses[LocaleFromCatalogName(catalogName)] = status
	}
	return statuses, nil
}

func (scanner *Scanner) translationStatus(catalogPath string) (TranslationStatus, error) {
	catalogData, readError := scanner.fileSystem.ReadFile(catalogPath)
	if readError != nil {
		return TranslationStatus{}, fmt.Errorf(catalogReadErrorTemplateConstant, catalogPath, readError)
	}

	catalog, parseError := po.Load(catalogData)
	if parseError != nil {
		return TranslationStatus{}, fmt.Errorf(catalogParseErrorTemplateConstant, catalogPath, parseError)
	}

	status := TranslationStatus{Team: strings.TrimSpace(catalog.MimeHeader.LanguageTeam)}
	for _, message := range catalog.Messages {
		switch classifyMessage(message) {
		case messageStateTranslated:
			status.Translated++
		case messageStateUntranslated:
			status.Untranslated++
		case messageStateFuzzy:
			status.Fuzzy++
		}
	}

	total := status.Translated + status.Untranslated + status.Fuzzy
	if total == 0 {
		return TranslationStatus{}, fmt.Errorf(catalogEmptyErrorTemplateConstant, ErrEmptyCatalog, catalogPath)
	}
	status.Percent = 1 - float64(status.Untranslated+status.Fuzzy)/float64(total)
	return status, nil
}

type messageState int

const (
	messageStateIgnored messageState = iota
	messageStateTranslated
	messageStateUntranslated
	messageStateFuzzy
)

func classifyMessage(message po.Message) messageState {
	if len(message.MsgId) == 0 {
		return messageStateIgnored
	}
	for _, flagGroup := range message.Flags {
		for _, flag := range strings.Split(flagGroup, catalogFlagSeparatorConstant) {
			if strings.TrimSpace(flag) == fuzzyFlagConstant {
				return messageStateFuzzy
			}
		}
	}
	if isTranslated(message) {
		return messageStateTranslated
	}
	return messageStateUntranslated
}

func isTranslated(message po.Message) bool {
	if len(message.MsgStr) > 0 {
		return true
	}
	if len(message.MsgStrPlural) == 0 {
		return false
	}
	for _, pluralTranslation := range message.MsgStrPlural {
		if len(pluralTranslation) == 0 {
			return false
		}
	}
	return true
}

func (scanner *Scanner) catalogDirectory() string {
	return filepath.Join(scanner.sourceRoot, catalogDirectoryNameConstant)
}

func (scanner *Scanner) catalogNames() ([]string, error) {
	entries, readError := scanner.fileSystem.ReadDir(scanner.catalogDirectory())
	if readError != nil {
		return nil, fmt.Errorf(catalogListErrorTemplateConstant, scanner.catalogDirectory(), readError)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
