package report

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

const (
	messageCatalogGlobConstant          = "locales/active.*.toml"
	messageCatalogFormatConstant        = "toml"
	messageCatalogLoadErrorTemplate     = "unable to load report messages %s: %w"
	messageCatalogListErrorTemplate     = "unable to list report messages: %w"
	messageLocalizeErrorTemplate        = "unable to render report message %s: %w"
	messageIDRemovalTitle               = "RemovalTitle"
	messageIDRemovalNoTranslation       = "RemovalNoTranslation"
	messageIDRemovalSummary             = "RemovalSummary"
	messageIDCoverageTitle              = "CoverageTitle"
	messageIDCoverageWithVoices         = "CoverageWithVoices"
	messageIDCoverageWithoutVoices      = "CoverageWithoutVoices"
	messageIDLocaleTitle                = "LocaleTitle"
	messageIDCategoryIntroTitle         = "CategoryIntroTitle"
	messageIDCategoryAlphabetTitle      = "CategoryAlphabetTitle"
	messageIDCategoryMiscTitle          = "CategoryMiscTitle"
	messageIDCategoryColorsTitle        = "CategoryColorsTitle"
	messageIDCategoryGeographyTitle     = "CategoryGeographyTitle"
	messageIDCategoryWordsTitle         = "CategoryWordsTitle"
	messageIDFilesCorrect               = "FilesCorrect"
	messageIDFilesMissing               = "FilesMissing"
	messageIDFilesNotNeeded             = "FilesNotNeeded"
	messageIDTableHeader                = "TableHeader"
	messageIDNoticeLanguageList         = "NoticeLanguageListUnreadable"
	messageIDNoticeMissingIntroTag      = "NoticeMissingIntroTag"
	messageIDNoticeMissingWords         = "NoticeMissingWordsResource"
	messageIDNoticeMissingAlphabet      = "NoticeMissingAlphabetResource"
	DefaultLanguageConstant             = "en"
	unsupportedLanguageWarningTemplate  = "unsupported report language %q"
)

//go:embed locales/active.*.toml
var messageCatalogs embed.FS

// Messages renders the fixed report sentences in one language.
type Messages struct {
	localizer *i18n.Localizer
}

// NewMessages loads the embedded catalogs and selects the requested language,
// falling back to English for unknown languages or missing messages.
func NewMessages(requestedLanguage string) (*Messages, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(messageCatalogFormatConstant, toml.Unmarshal)

	catalogPaths, globError := fs.Glob(messageCatalogs, messageCatalogGlobConstant)
	if globError != nil {
		return nil, fmt.Errorf(messageCatalogListErrorTemplate, globError)
	}
	for _, catalogPath := range catalogPaths {
		if _, loadError := bundle.LoadMessageFileFS(messageCatalogs, catalogPath); loadError != nil {
			return nil, fmt.Errorf(messageCatalogLoadErrorTemplate, catalogPath, loadError)
		}
	}

	requested := strings.TrimSpace(requestedLanguage)
	if len(requested) == 0 {
		requested = DefaultLanguageConstant
	}

	return &Messages{localizer: i18n.NewLocalizer(bundle, requested, DefaultLanguageConstant)}, nil
}

// SupportedLanguages lists the languages with an embedded catalog.
func SupportedLanguages() []string {
	catalogPaths, globError := fs.Glob(messageCatalogs, messageCatalogGlobConstant)
	if globError != nil {
		return []string{DefaultLanguageConstant}
	}
	languages := make([]string, 0, len(catalogPaths))
	for _, catalogPath := range catalogPaths {
		baseName := strings.TrimPrefix(catalogPath, "locales/active.")
		languages = append(languages, strings.TrimSuffix(baseName, "."+messageCatalogFormatConstant))
	}
	return languages
}

// IsSupportedLanguage reports whether a catalog exists for the language tag or its base language.
func IsSupportedLanguage(requestedLanguage string) bool {
	tag, parseError := language.Parse(requestedLanguage)
	if parseError != nil {
		return false
	}
	base, _ := tag.Base()
	for _, supported := range SupportedLanguages() {
		if supported == base.String() {
			return true
		}
	}
	return false
}

// UnsupportedLanguageWarning formats the warning logged for unknown languages.
func UnsupportedLanguageWarning(requestedLanguage string) string {
	return fmt.Sprintf(unsupportedLanguageWarningTemplate, requestedLanguage)
}

func (messages *Messages) render(messageID string, templateData map[string]any) (string, error) {
	text, localizeError := messages.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	})
	if localizeError != nil && len(text) == 0 {
		return "", fmt.Errorf(messageLocalizeErrorTemplate, messageID, localizeError)
	}
	return text, nil
}
