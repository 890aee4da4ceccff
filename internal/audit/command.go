package audit

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/voicecheck/internal/filesystem"
	"github.com/temirov/voicecheck/internal/report"
	"github.com/temirov/voicecheck/internal/utils"
	"github.com/temirov/voicecheck/internal/utils/flags"
	pathutils "github.com/temirov/voicecheck/internal/utils/path"
)

const (
	commandUseConstant                    = "voicecheck [-v] [-nn] <path-to-source-tree>"
	commandShortDescriptionConstant       = "Report missing and extraneous voice recordings"
	commandLongDescriptionConstant        = "voicecheck compares the voices expected by a source tree with the recordings present under the voices root and prints a markdown report."
	commandExecutionErrorTemplateConstant = "voice audit failed: %w"
	flagVerboseNameConstant               = "verbose"
	flagVerboseShorthandConstant          = "v"
	flagVerboseDescriptionConstant        = "Also list files and locales that are correct"
	flagNotNeededNameConstant             = "not-needed"
	flagNotNeededShorthandConstant        = "n"
	flagNotNeededDescriptionConstant      = "Also list recorded files that are not needed (-nn is accepted)"
	flagVoicesNameConstant                = "voices"
	flagVoicesDescriptionConstant         = "Root directory holding one voices directory per locale"
	flagFormatNameConstant                = "format"
	flagFormatDescriptionConstant         = "Report encoding"
	flagReportLanguageNameConstant        = "report-language"
	flagReportLanguageDescriptionConstant = "Language of the report headings"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current audit configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the voice audit cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	FileSystem            filesystem.FileSystem
	HomeExpander          *pathutils.HomeExpander
}

// Build constructs the cobra command for the voice audit.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	defaults := DefaultCommandConfiguration()
	command.Flags().BoolP(flagVerboseNameConstant, flagVerboseShorthandConstant, defaults.Verbose, flagVerboseDescriptionConstant)
	command.Flags().BoolP(flagNotNeededNameConstant, flagNotNeededShorthandConstant, defaults.NotNeeded, flagNotNeededDescriptionConstant)
	command.Flags().String(flagVoicesNameConstant, defaults.VoicesRoot, flagVoicesDescriptionConstant)
	command.Flags().Var(flags.NewChoiceValue(defaults.Format, report.Formats()), flagFormatNameConstant, flags.FormatChoiceUsage(defaults.Format, report.Formats(), flagFormatDescriptionConstant))
	command.Flags().String(flagReportLanguageNameConstant, defaults.ReportLanguage, flags.FormatChoiceUsage(defaults.ReportLanguage, report.SupportedLanguages(), flagReportLanguageDescriptionConstant))

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) == 0 {
		if usageError := builder.displayCommandUsage(command); usageError != nil {
			return usageError
		}
		return ErrMissingSourceTree
	}

	options := builder.parseOptions(command, arguments[0])
	executionContext := utils.NewCommandContextAccessor().WithSourceRoot(command.Context(), options.SourceRoot)
	command.SetContext(executionContext)

	service := NewService(builder.FileSystem, builder.resolveLogger(), command.OutOrStdout())
	if runError := service.Run(executionContext, options); runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, sourceRoot string) CommandOptions {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	if command.Flags().Changed(flagVerboseNameConstant) {
		configuration.Verbose, _ = command.Flags().GetBool(flagVerboseNameConstant)
	}
	if command.Flags().Changed(flagNotNeededNameConstant) {
		configuration.NotNeeded, _ = command.Flags().GetBool(flagNotNeededNameConstant)
	}
	if command.Flags().Changed(flagVoicesNameConstant) {
		configuration.VoicesRoot, _ = command.Flags().GetString(flagVoicesNameConstant)
	}
	if command.Flags().Changed(flagFormatNameConstant) {
		configuration.Format = command.Flags().Lookup(flagFormatNameConstant).Value.String()
	}
	if command.Flags().Changed(flagReportLanguageNameConstant) {
		configuration.ReportLanguage, _ = command.Flags().GetString(flagReportLanguageNameConstant)
	}

	sanitized := configuration.sanitize()
	expander := builder.resolveHomeExpander()

	return CommandOptions{
		SourceRoot:         expander.Expand(strings.TrimSpace(sourceRoot)),
		VoicesRoot:         expander.Expand(sanitized.VoicesRoot),
		Verbose:            sanitized.Verbose,
		NotNeeded:          sanitized.NotNeeded,
		Format:             report.Format(sanitized.Format),
		ReportLanguage:     sanitized.ReportLanguage,
		ExcludedActivities: sanitized.ExcludedActivities,
		IgnoredFiles:       sanitized.IgnoredFiles,
	}
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveHomeExpander() *pathutils.HomeExpander {
	if builder.HomeExpander != nil {
		return builder.HomeExpander
	}
	return pathutils.NewHomeExpander()
}

func (builder *CommandBuilder) displayCommandUsage(command *cobra.Command) error {
	if command == nil {
		return nil
	}
	return command.Usage()
}
