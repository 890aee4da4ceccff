package report

import (
	"github.com/temirov/voicecheck/internal/catalogs"
	"github.com/temirov/voicecheck/internal/inventory"
)

// Report is the complete, render-ready result of an audit run.
type Report struct {
	ConfigurationNotices []inventory.Notice
	Statuses             map[string]catalogs.TranslationStatus
	Evaluation           catalogs.LocaleEvaluation
	Coverage             LocaleCoverage
	IntroNotices         []inventory.Notice
	Locales              []LocaleSection
}

// LocaleCoverage tells which kept locales have a voice directory.
type LocaleCoverage struct {
	Expected      []string `yaml:"-"`
	Present       []string `yaml:"-"`
	WithVoices    []string `yaml:"with_voices"`
	WithoutVoices []string `yaml:"without_voices"`
}

// Empty reports whether there was nothing to compare.
func (coverage LocaleCoverage) Empty() bool {
	return len(coverage.Expected) == 0 && len(coverage.Present) == 0
}

// LocaleSection groups the category comparisons of one locale.
type LocaleSection struct {
	Locale     string
	Team       string
	Categories []CategorySection
}

// CategorySection is the comparison of one category for one locale. Notices
// raised while computing the expected files precede the comparison.
type CategorySection struct {
	Category   inventory.Category
	Notices    []inventory.Notice
	Matched    []FileRow
	Missing    []FileRow
	Extraneous []FileRow
}

// Empty reports whether neither expected nor actual files existed.
func (section CategorySection) Empty() bool {
	return len(section.Matched) == 0 && len(section.Missing) == 0 && len(section.Extraneous) == 0
}

// FileRow is one table row: a file name and its description, when known.
type FileRow struct {
	File        string `yaml:"file"`
	Description string `yaml:"description,omitempty"`
	Described   bool   `yaml:"-"`
}

// NewCategorySection compares expected and actual files and resolves
// descriptions as known at call time.
func NewCategorySection(category inventory.Category, expected inventory.FileSet, actual inventory.FileSet, descriptions *inventory.Descriptions, notices []inventory.Notice) CategorySection {
	difference := inventory.Diff(expected, actual)
	return CategorySection{
		Category:   category,
		Notices:    notices,
		Matched:    describeFiles(difference.Matched, descriptions),
		Missing:    describeFiles(difference.Missing, descriptions),
		Extraneous: describeFiles(difference.Extraneous, descriptions),
	}
}

// NewLocaleCoverage splits the expected locales by the presence of voices.
func NewLocaleCoverage(expected []string, present []string, hasVoices func(locale string) bool) LocaleCoverage {
	coverage := LocaleCoverage{
		Expected:      append([]string{}, expected...),
		Present:       append([]string{}, present...),
		WithVoices:    []string{},
		WithoutVoices: []string{},
	}
	for _, locale := range inventory.NewFileSet(expected...).Sorted() {
		if hasVoices(locale) {
			coverage.WithVoices = append(coverage.WithVoices, locale)
			continue
		}
		coverage.WithoutVoices = append(coverage.WithoutVoices, locale)
	}
	return coverage
}

func describeFiles(fileNames []string, descriptions *inventory.Descriptions) []FileRow {
	rows := make([]FileRow, 0, len(fileNames))
	for _, fileName := range fileNames {
		description, described := descriptions.Lookup(fileName)
		rows = append(rows, FileRow{File: fileName, Description: description, Described: described})
	}
	return rows
}
