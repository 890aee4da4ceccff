package audit

import (
	"strings"

	"github.com/temirov/voicecheck/internal/report"
	"github.com/temirov/voicecheck/internal/sources"
	"github.com/temirov/voicecheck/internal/voices"
)

const (
	defaultVoicesRootConstant = "."
	configurationKeySeparator = "."
)

// CommandConfiguration captures configuration values for the voice audit command.
type CommandConfiguration struct {
	VoicesRoot         string   `mapstructure:"voices_root"`
	Verbose            bool     `mapstructure:"verbose"`
	NotNeeded          bool     `mapstructure:"not_needed"`
	Format             string   `mapstructure:"format"`
	ReportLanguage     string   `mapstructure:"report_language"`
	ExcludedActivities []string `mapstructure:"excluded_activities"`
	IgnoredFiles       []string `mapstructure:"ignored_files"`
}

// DefaultCommandConfiguration provides baseline configuration values for the audit.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		VoicesRoot:         defaultVoicesRootConstant,
		Verbose:            false,
		NotNeeded:          false,
		Format:             string(report.FormatMarkdown),
		ReportLanguage:     report.DefaultLanguageConstant,
		ExcludedActivities: sources.DefaultExcludedActivities(),
		IgnoredFiles:       voices.DefaultIgnoredFiles(),
	}
}

// DefaultConfigurationValues exposes the defaults keyed for viper under the provided prefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey(configurationPrefix, "voices_root"):         defaults.VoicesRoot,
		configurationKey(configurationPrefix, "verbose"):             defaults.Verbose,
		configurationKey(configurationPrefix, "not_needed"):          defaults.NotNeeded,
		configurationKey(configurationPrefix, "format"):              defaults.Format,
		configurationKey(configurationPrefix, "report_language"):     defaults.ReportLanguage,
		configurationKey(configurationPrefix, "excluded_activities"): defaults.ExcludedActivities,
		configurationKey(configurationPrefix, "ignored_files"):       defaults.IgnoredFiles,
	}
}

func configurationKey(configurationPrefix string, key string) string {
	trimmedPrefix := strings.TrimSpace(configurationPrefix)
	if len(trimmedPrefix) == 0 {
		return key
	}
	return trimmedPrefix + configurationKeySeparator + key
}

// sanitize trims configuration values and restores defaults for blank scalars.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.VoicesRoot = strings.TrimSpace(configuration.VoicesRoot)
	if len(sanitized.VoicesRoot) == 0 {
		sanitized.VoicesRoot = defaultVoicesRootConstant
	}

	sanitized.Format = strings.ToLower(strings.TrimSpace(configuration.Format))
	if len(sanitized.Format) == 0 {
		sanitized.Format = string(report.FormatMarkdown)
	}

	sanitized.ReportLanguage = strings.TrimSpace(configuration.ReportLanguage)
	if len(sanitized.ReportLanguage) == 0 {
		sanitized.ReportLanguage = report.DefaultLanguageConstant
	}

	if configuration.ExcludedActivities != nil {
		sanitized.ExcludedActivities = sanitizeNames(configuration.ExcludedActivities)
	}
	if configuration.IgnoredFiles != nil {
		sanitized.IgnoredFiles = sanitizeNames(configuration.IgnoredFiles)
	}

	return sanitized
}

func sanitizeNames(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for _, candidate := range raw {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}
