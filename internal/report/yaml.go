package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/temirov/voicecheck/internal/catalogs"
	"github.com/temirov/voicecheck/internal/inventory"
)

const yamlIndentationConstant = 2

// YAMLRenderer produces a machine-readable summary of the audit.
type YAMLRenderer struct {
	options RenderOptions
}

type yamlDocument struct {
	Threshold            float64                               `yaml:"threshold"`
	ConfigurationNotices []inventory.Notice                    `yaml:"configuration_notices,omitempty"`
	Statuses             map[string]catalogs.TranslationStatus `yaml:"translation_status"`
	Evaluation           catalogs.LocaleEvaluation             `yaml:"configured_locales"`
	Coverage             *LocaleCoverage                       `yaml:"voice_coverage,omitempty"`
	IntroNotices         []inventory.Notice                    `yaml:"intro_notices,omitempty"`
	Locales              []yamlLocale                          `yaml:"locales"`
}

type yamlLocale struct {
	Locale     string         `yaml:"locale"`
	Team       string         `yaml:"team,omitempty"`
	Categories []yamlCategory `yaml:"categories,omitempty"`
}

type yamlCategory struct {
	Category   inventory.Category `yaml:"category"`
	Notices    []inventory.Notice `yaml:"notices,omitempty"`
	Matched    []FileRow          `yaml:"matched,omitempty"`
	Missing    []FileRow          `yaml:"missing,omitempty"`
	Extraneous []FileRow          `yaml:"extraneous,omitempty"`
}

// Render writes the YAML summary. Matched and extraneous files are included
// only in verbose and not-needed modes respectively, as in the markdown report.
func (renderer *YAMLRenderer) Render(writer io.Writer, document Report) error {
	summary := yamlDocument{
		Threshold:            catalogs.LocaleThreshold,
		ConfigurationNotices: document.ConfigurationNotices,
		Statuses:             document.Statuses,
		Evaluation:           document.Evaluation,
		IntroNotices:         document.IntroNotices,
		Locales:              make([]yamlLocale, 0, len(document.Locales)),
	}
	if !document.Coverage.Empty() {
		coverage := document.Coverage
		summary.Coverage = &coverage
	}

	for _, localeSection := range document.Locales {
		locale := yamlLocale{Locale: localeSection.Locale, Team: localeSection.Team}
		for _, categorySection := range localeSection.Categories {
			if categorySection.Empty() && len(categorySection.Notices) == 0 {
				continue
			}
			category := yamlCategory{
				Category: categorySection.Category,
				Notices:  categorySection.Notices,
				Missing:  categorySection.Missing,
			}
			if renderer.options.Verbose {
				category.Matched = categorySection.Matched
			}
			if renderer.options.NotNeeded {
				category.Extraneous = categorySection.Extraneous
			}
			locale.Categories = append(locale.Categories, category)
		}
		summary.Locales = append(summary.Locales, locale)
	}

	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(yamlIndentationConstant)
	if encodeError := encoder.Encode(summary); encodeError != nil {
		return encodeError
	}
	return encoder.Close()
}
