package audit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/temirov/voicecheck/internal/catalogs"
	"github.com/temirov/voicecheck/internal/filesystem"
	"github.com/temirov/voicecheck/internal/inventory"
	"github.com/temirov/voicecheck/internal/report"
	"github.com/temirov/voicecheck/internal/sources"
	"github.com/temirov/voicecheck/internal/voices"
)

const (
	referenceLocaleConstant                = "en"
	localeSeparatorConstant                = "_"
	languageTagSeparatorConstant           = "-"
	missingSourceTreeMessageConstant       = "path to the source tree is required"
	translationStatusErrorTemplateConstant = "unable to read translation statuses: %w"
	catalogLocalesErrorTemplateConstant    = "unable to list catalog locales: %w"
	introDescriptionsErrorTemplateConstant = "unable to read intro descriptions: %w"
	introFilesErrorTemplateConstant        = "unable to list intro files: %w"
	voiceLocalesErrorTemplateConstant      = "unable to list voice locales in %s: %w"
	rendererErrorTemplateConstant          = "unable to prepare report: %w"
	renderErrorTemplateConstant            = "unable to write report: %w"
	logMessageAuditStartedConstant         = "voice audit started"
	logMessageLocaleEvaluatedConstant      = "locale configuration evaluated"
	logMessageLocaleScanConstant           = "scanning locale"
	logMessageLocalesCollectedConstant     = "locales collected"
	logMessageLocaleTagInvalidConstant     = "locale is not a valid language tag"
	logMessageNoticeConstant               = "audit notice"
	logFieldSourceRootConstant             = "source_root"
	logFieldVoicesRootConstant             = "voices_root"
	logFieldLocaleConstant                 = "locale"
	logFieldLocaleCountConstant            = "locale_count"
	logFieldGoodLocalesConstant            = "good_locales"
	logFieldRemovalCountConstant           = "removal_candidates"
	logFieldNoticeKindConstant             = "notice_kind"
	logFieldNoticePathConstant             = "notice_path"
	logFieldNoticeReasonConstant           = "notice_reason"
	logFieldReportLanguageConstant         = "report_language"
)

// ErrMissingSourceTree indicates that no source tree path was supplied.
var ErrMissingSourceTree = errors.New(missingSourceTreeMessageConstant)

// ScannerFactory builds the scanners for one run.
type ScannerFactory func(fileSystem filesystem.FileSystem, options CommandOptions) Scanners

// Service coordinates the voice audit workflow.
type Service struct {
	fileSystem     filesystem.FileSystem
	logger         *zap.Logger
	outputWriter   io.Writer
	scannerFactory ScannerFactory
}

// NewService constructs a Service instance.
func NewService(fileSystem filesystem.FileSystem, logger *zap.Logger, outputWriter io.Writer) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	return &Service{
		fileSystem:     filesystem.Resolve(fileSystem),
		logger:         logger,
		outputWriter:   outputWriter,
		scannerFactory: DefaultScanners,
	}
}

// WithScannerFactory replaces the scanner construction used by Run.
func (service *Service) WithScannerFactory(factory ScannerFactory) *Service {
	if factory != nil {
		service.scannerFactory = factory
	}
	return service
}

// DefaultScanners builds filesystem-backed scanners rooted at the configured paths.
func DefaultScanners(fileSystem filesystem.FileSystem, options CommandOptions) Scanners {
	return Scanners{
		Catalogs: catalogs.NewScanner(fileSystem, options.SourceRoot),
		Sources:  sources.NewScanner(fileSystem, options.SourceRoot, options.ExcludedActivities),
		Voices:   voices.NewScanner(fileSystem, options.VoicesRoot, options.IgnoredFiles),
	}
}

// Run scans the source and voices trees and writes the report.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	if len(strings.TrimSpace(options.SourceRoot)) == 0 {
		return ErrMissingSourceTree
	}
	if executionContext == nil {
		executionContext = context.Background()
	}

	renderer, rendererError := report.NewRenderer(options.Format, options.renderOptions())
	if rendererError != nil {
		return fmt.Errorf(rendererErrorTemplateConstant, rendererError)
	}
	if options.Format != report.FormatYAML && !report.IsSupportedLanguage(options.ReportLanguage) {
		service.logger.Warn(
			report.UnsupportedLanguageWarning(options.ReportLanguage),
			zap.String(logFieldReportLanguageConstant, report.DefaultLanguageConstant),
		)
	}

	service.logger.Debug(
		logMessageAuditStartedConstant,
		zap.String(logFieldSourceRootConstant, options.SourceRoot),
		zap.String(logFieldVoicesRootConstant, options.VoicesRoot),
	)

	document, buildError := service.buildReport(executionContext, service.scannerFactory(service.fileSystem, options), options)
	if buildError != nil {
		return buildError
	}

	if renderError := renderer.Render(service.outputWriter, document); renderError != nil {
		return fmt.Errorf(renderErrorTemplateConstant, renderError)
	}
	return nil
}

func (service *Service) buildReport(executionContext context.Context, scanners Scanners, options CommandOptions) (report.Report, error) {
	statuses, statusError := scanners.Catalogs.TranslationStatuses()
	if statusError != nil {
		return report.Report{}, fmt.Errorf(translationStatusErrorTemplateConstant, statusError)
	}

	configuredLocales, configurationNotices := scanners.Catalogs.ConfiguredLocales()
	service.logNotices(configurationNotices)

	evaluation := catalogs.EvaluateLocaleConfiguration(statuses, configuredLocales)
	service.logger.Debug(
		logMessageLocaleEvaluatedConstant,
		zap.Strings(logFieldGoodLocalesConstant, evaluation.Good),
		zap.Int(logFieldRemovalCountConstant, len(evaluation.RemovalCandidates)),
	)

	voiceLocales, voiceLocalesError := scanners.Voices.Locales()
	if voiceLocalesError != nil {
		return report.Report{}, fmt.Errorf(voiceLocalesErrorTemplateConstant, options.VoicesRoot, voiceLocalesError)
	}

	descriptions := inventory.NewDescriptions()
	introNotices, introError := scanners.Sources.IntroDescriptions(descriptions)
	if introError != nil {
		return report.Report{}, fmt.Errorf(introDescriptionsErrorTemplateConstant, introError)
	}
	service.logNotices(introNotices)

	catalogLocales, catalogLocalesError := scanners.Catalogs.Locales()
	if catalogLocalesError != nil {
		return report.Report{}, fmt.Errorf(catalogLocalesErrorTemplateConstant, catalogLocalesError)
	}

	introFiles, introFilesError := scanners.Sources.IntroFiles()
	if introFilesError != nil {
		return report.Report{}, fmt.Errorf(introFilesErrorTemplateConstant, introFilesError)
	}

	referenceFiles := map[inventory.Category]inventory.FileSet{
		inventory.CategoryMisc:      scanners.Voices.Files(referenceLocaleConstant, inventory.CategoryMisc),
		inventory.CategoryColors:    scanners.Voices.Files(referenceLocaleConstant, inventory.CategoryColors),
		inventory.CategoryGeography: scanners.Voices.Files(referenceLocaleConstant, inventory.CategoryGeography),
	}

	allLocales := inventory.NewFileSet(catalogLocales...).Union(inventory.NewFileSet(voiceLocales...)).Sorted()
	service.logger.Debug(logMessageLocalesCollectedConstant, zap.Int(logFieldLocaleCountConstant, len(allLocales)))

	document := report.Report{
		ConfigurationNotices: configurationNotices,
		Statuses:             statuses,
		Evaluation:           evaluation,
		Coverage:             report.NewLocaleCoverage(evaluation.Good, voiceLocales, scanners.Voices.HasLocale),
		IntroNotices:         introNotices,
		Locales:              make([]report.LocaleSection, 0, len(allLocales)),
	}

	for _, locale := range allLocales {
		if contextError := executionContext.Err(); contextError != nil {
			return report.Report{}, contextError
		}
		service.logLocale(locale)

		alphabetFiles, alphabetNotices := scanners.Sources.Alphabet(locale, descriptions)
		service.logNotices(alphabetNotices)
		wordFiles, wordNotices := scanners.Sources.Words(locale)
		service.logNotices(wordNotices)

		section := report.LocaleSection{Locale: locale, Team: statuses[locale].Team}
		section.Categories = []report.CategorySection{
			report.NewCategorySection(inventory.CategoryIntro, introFiles, scanners.Voices.Files(locale, inventory.CategoryIntro), descriptions, nil),
			report.NewCategorySection(inventory.CategoryAlphabet, alphabetFiles, scanners.Voices.Files(locale, inventory.CategoryAlphabet), descriptions, alphabetNotices),
			report.NewCategorySection(inventory.CategoryMisc, referenceFiles[inventory.CategoryMisc], scanners.Voices.Files(locale, inventory.CategoryMisc), descriptions, nil),
			report.NewCategorySection(inventory.CategoryColors, referenceFiles[inventory.CategoryColors], scanners.Voices.Files(locale, inventory.CategoryColors), descriptions, nil),
			report.NewCategorySection(inventory.CategoryGeography, referenceFiles[inventory.CategoryGeography], scanners.Voices.Files(locale, inventory.CategoryGeography), descriptions, nil),
			report.NewCategorySection(inventory.CategoryWords, wordFiles, scanners.Voices.Files(locale, inventory.CategoryWords), descriptions, wordNotices),
		}
		document.Locales = append(document.Locales, section)
	}

	return document, nil
}

func (service *Service) logLocale(locale string) {
	service.logger.Debug(logMessageLocaleScanConstant, zap.String(logFieldLocaleConstant, locale))
	if _, parseError := language.Parse(strings.ReplaceAll(locale, localeSeparatorConstant, languageTagSeparatorConstant)); parseError != nil {
		service.logger.Debug(logMessageLocaleTagInvalidConstant, zap.String(logFieldLocaleConstant, locale), zap.Error(parseError))
	}
}

func (service *Service) logNotices(notices []inventory.Notice) {
	for _, notice := range notices {
		service.logger.Warn(
			logMessageNoticeConstant,
			zap.String(logFieldNoticeKindConstant, string(notice.Kind)),
			zap.String(logFieldNoticePathConstant, notice.Path),
			zap.String(logFieldNoticeReasonConstant, notice.Reason),
		)
	}
}
