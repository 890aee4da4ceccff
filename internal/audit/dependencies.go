package audit

import (
	"github.com/temirov/voicecheck/internal/catalogs"
	"github.com/temirov/voicecheck/internal/inventory"
)

// CatalogScanner exposes the translation catalog queries used by the audit.
type CatalogScanner interface {
	TranslationStatuses() (map[string]catalogs.TranslationStatus, error)
	ConfiguredLocales() ([]string, []inventory.Notice)
	Locales() ([]string, error)
}

// SourceScanner exposes the activity and resource queries used by the audit.
type SourceScanner interface {
	IntroFiles() (inventory.FileSet, error)
	IntroDescriptions(descriptions *inventory.Descriptions) ([]inventory.Notice, error)
	Words(locale string) (inventory.FileSet, []inventory.Notice)
	Alphabet(locale string, descriptions *inventory.Descriptions) (inventory.FileSet, []inventory.Notice)
}

// VoiceScanner exposes the recorded voice queries used by the audit.
type VoiceScanner interface {
	Files(locale string, category inventory.Category) inventory.FileSet
	Locales() ([]string, error)
	HasLocale(locale string) bool
}

// Scanners groups the collaborators consulted during one audit run.
type Scanners struct {
	Catalogs CatalogScanner
	Sources  SourceScanner
	Voices   VoiceScanner
}
