package report

import (
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/temirov/voicecheck/internal/catalogs"
	"github.com/temirov/voicecheck/internal/inventory"
)

const (
	tableOfContentsDirective   = "[TOC]"
	tableSeparatorLine         = "|------|-------------|"
	levelOneUnderlineCharacter = "="
	levelTwoUnderlineCharacter = "-"
	levelThreePrefix           = "### "
	bulletPrefix               = "* "
	localeListSeparator        = " "
)

var categoryTitleMessageIDs = map[inventory.Category]string{
	inventory.CategoryIntro:     messageIDCategoryIntroTitle,
	inventory.CategoryAlphabet:  messageIDCategoryAlphabetTitle,
	inventory.CategoryMisc:      messageIDCategoryMiscTitle,
	inventory.CategoryColors:    messageIDCategoryColorsTitle,
	inventory.CategoryGeography: messageIDCategoryGeographyTitle,
	inventory.CategoryWords:     messageIDCategoryWordsTitle,
}

var noticeMessageIDs = map[inventory.NoticeKind]string{
	inventory.NoticeLanguageListUnreadable:  messageIDNoticeLanguageList,
	inventory.NoticeMissingIntroTag:         messageIDNoticeMissingIntroTag,
	inventory.NoticeMissingWordsResource:    messageIDNoticeMissingWords,
	inventory.NoticeMissingAlphabetResource: messageIDNoticeMissingAlphabet,
}

// MarkdownRenderer produces the markdown document, one section per locale.
type MarkdownRenderer struct {
	messages *Messages
	options  RenderOptions
}

type markdownDocument struct {
	messages *Messages
	builder  strings.Builder
	failure  error
}

// Render writes the document. Nothing is written when a message cannot be rendered.
func (renderer *MarkdownRenderer) Render(writer io.Writer, document Report) error {
	output := &markdownDocument{messages: renderer.messages}

	output.line(tableOfContentsDirective)
	output.line("")

	for _, notice := range document.ConfigurationNotices {
		output.line(output.notice(notice))
	}
	renderer.renderEvaluation(output, document.Evaluation)
	renderer.renderCoverage(output, document.Coverage)

	for _, notice := range document.IntroNotices {
		output.line(output.notice(notice))
	}
	output.line("")

	for _, localeSection := range document.Locales {
		output.titleOne(output.message(messageIDLocaleTitle, map[string]any{
			"Locale": localeSection.Locale,
			"Team":   localeSection.Team,
		}))
		for _, categorySection := range localeSection.Categories {
			renderer.renderCategory(output, localeSection.Locale, categorySection)
		}
	}

	if output.failure != nil {
		return output.failure
	}
	_, writeError := io.WriteString(writer, output.builder.String())
	return writeError
}

func (renderer *MarkdownRenderer) renderEvaluation(output *markdownDocument, evaluation catalogs.LocaleEvaluation) {
	thresholdPercent := int(math.Round(catalogs.LocaleThreshold * 100))
	output.titleTwo(output.message(messageIDRemovalTitle, map[string]any{"Threshold": thresholdPercent}))

	for _, candidate := range evaluation.RemovalCandidates {
		if candidate.NoTranslation {
			output.line(bulletPrefix + output.message(messageIDRemovalNoTranslation, map[string]any{"Locale": candidate.Locale}))
			continue
		}
		output.line(bulletPrefix + candidate.Locale)
	}

	output.line("")
	output.line(output.message(messageIDRemovalSummary, map[string]any{
		"Count":     len(evaluation.Good),
		"Threshold": thresholdPercent,
		"Locales":   strings.Join(evaluation.Good, localeListSeparator),
	}))
}

func (renderer *MarkdownRenderer) renderCoverage(output *markdownDocument, coverage LocaleCoverage) {
	if coverage.Empty() {
		return
	}

	output.titleTwo(output.message(messageIDCoverageTitle, nil))
	if renderer.options.Verbose {
		output.titleThree(output.message(messageIDCoverageWithVoices, nil))
		for _, locale := range coverage.WithVoices {
			output.line(bulletPrefix + locale)
		}
	}
	output.line("")
	output.line(output.message(messageIDCoverageWithoutVoices, nil))
	for _, locale := range coverage.WithoutVoices {
		output.line(bulletPrefix + locale)
	}
	output.line("")
}

func (renderer *MarkdownRenderer) renderCategory(output *markdownDocument, locale string, section CategorySection) {
	for _, notice := range section.Notices {
		output.line("")
		output.line(output.notice(notice))
		output.line("")
	}

	if section.Empty() {
		return
	}

	output.titleTwo(output.message(categoryTitleMessageIDs[section.Category], map[string]any{"Locale": locale}))

	if renderer.options.Verbose && len(section.Matched) > 0 {
		output.table(output.message(messageIDFilesCorrect, nil), section.Matched, describedRow)
	}
	if len(section.Missing) > 0 {
		output.table(output.message(messageIDFilesMissing, nil), section.Missing, describedRow)
	}
	if renderer.options.NotNeeded && len(section.Extraneous) > 0 {
		output.table(output.message(messageIDFilesNotNeeded, nil), section.Extraneous, notNeededRow)
	}
}

func describedRow(row FileRow) string {
	if row.Described {
		return "| " + row.File + " | " + row.Description + " |"
	}
	return "|" + row.File + " |  |"
}

func notNeededRow(row FileRow) string {
	if row.Described {
		return "|" + row.File + " | " + row.Description + "|"
	}
	return "|" + row.File + " |  |"
}

func (output *markdownDocument) table(title string, rows []FileRow, formatRow func(FileRow) string) {
	output.titleThree(title)
	output.line(output.message(messageIDTableHeader, nil))
	output.line(tableSeparatorLine)
	for _, row := range rows {
		output.line(formatRow(row))
	}
	output.line("")
}

func (output *markdownDocument) titleOne(title string) {
	output.line(title)
	output.line(strings.Repeat(levelOneUnderlineCharacter, utf8.RuneCountInString(title)))
	output.line("")
}

func (output *markdownDocument) titleTwo(title string) {
	output.line(title)
	output.line(strings.Repeat(levelTwoUnderlineCharacter, utf8.RuneCountInString(title)))
	output.line("")
}

func (output *markdownDocument) titleThree(title string) {
	output.line(levelThreePrefix + title)
	output.line("")
}

func (output *markdownDocument) line(text string) {
	output.builder.WriteString(text)
	output.builder.WriteString("\n")
}

func (output *markdownDocument) notice(notice inventory.Notice) string {
	return output.message(noticeMessageIDs[notice.Kind], map[string]any{
		"Path":   notice.Path,
		"Reason": notice.Reason,
	})
}

func (output *markdownDocument) message(messageID string, templateData map[string]any) string {
	if output.failure != nil {
		return ""
	}
	text, renderError := output.messages.render(messageID, templateData)
	if renderError != nil {
		output.failure = renderError
		return ""
	}
	return text
}
