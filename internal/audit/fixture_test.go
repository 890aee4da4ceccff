package audit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

const (
	frenchCatalogConstant = "msgid \"\"\nmsgstr \"\"\n\"Language-Team: French\\n\"\n\"Content-Type: text/plain; charset=UTF-8\\n\"\n\n" +
		"msgid \"Hello\"\nmsgstr \"Bonjour\"\n"
	emptyCatalogConstant       = "msgid \"\"\nmsgstr \"\"\n\"Language-Team: French\\n\"\n"
	languageListConstant       = "ListModel {\n    { \"locale\": \"system\" },\n    { \"locale\": \"en_US.UTF-8\" },\n    { \"locale\": \"fr_FR.UTF-8\" },\n    { \"locale\": \"de_DE.UTF-8\" }\n}\n"
	ballDescriptorConstant     = "ActivityInfo {\n  name: \"ball/Ball.qml\"\n  intro: \"Play with the ball\"\n}\n"
	templateDescriptorConstant = "ActivityInfo {\n  name: \"template/Template.qml\"\n}\n"
	alphabetResourceConstant   = "{\"levels\": [{\"words\": [\"Cat\"]}]}"
	wordsResourceConstant      = "{\"chat.ogg\": \"chat\"}"
)

type auditFixture struct {
	sourceRoot string
	voicesRoot string
}

func writeFixtureFile(testInstance *testing.T, root string, relativePath string, content string) {
	testInstance.Helper()
	absolutePath := filepath.Join(root, filepath.FromSlash(relativePath))
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
	require.NoError(testInstance, os.WriteFile(absolutePath, []byte(content), 0o600))
}

func newAuditFixture(testInstance *testing.T, catalogContent string) auditFixture {
	testInstance.Helper()
	fixture := auditFixture{
		sourceRoot: filepath.Join(testInstance.TempDir(), "gcompris"),
		voicesRoot: filepath.Join(testInstance.TempDir(), "voices"),
	}

	writeFixtureFile(testInstance, fixture.sourceRoot, "po/gcompris_fr.po", catalogContent)
	writeFixtureFile(testInstance, fixture.sourceRoot, "src/core/LanguageList.qml", languageListConstant)
	writeFixtureFile(testInstance, fixture.sourceRoot, "src/activities/ball/ActivityInfo.qml", ballDescriptorConstant)
	writeFixtureFile(testInstance, fixture.sourceRoot, "src/activities/template/ActivityInfo.qml", templateDescriptorConstant)
	writeFixtureFile(testInstance, fixture.sourceRoot, "src/activities/gletters/resource/default-fr.json", alphabetResourceConstant)
	writeFixtureFile(testInstance, fixture.sourceRoot, "src/activities/imageid/resource/content-fr.json", wordsResourceConstant)

	writeFixtureFile(testInstance, fixture.voicesRoot, "README", "voices")
	writeFixtureFile(testInstance, fixture.voicesRoot, "en/misc/click.ogg", "")
	writeFixtureFile(testInstance, fixture.voicesRoot, "fr/intro/ball.ogg", "")
	writeFixtureFile(testInstance, fixture.voicesRoot, "fr/intro/README", "ignored")
	writeFixtureFile(testInstance, fixture.voicesRoot, "fr/words/chien.ogg", "")
	require.NoError(testInstance, os.MkdirAll(filepath.Join(fixture.voicesRoot, ".git"), 0o755))

	return fixture
}

func (fixture auditFixture) resourcePath(relativePath string) string {
	return filepath.Join(fixture.sourceRoot, filepath.FromSlash(relativePath))
}

func titleOne(title string) string {
	return title + "\n" + strings.Repeat("=", utf8.RuneCountInString(title)) + "\n\n"
}

func titleTwo(title string) string {
	return title + "\n" + strings.Repeat("-", utf8.RuneCountInString(title)) + "\n\n"
}

func table(title string, rows ...string) string {
	return "### " + title + "\n\n| File | Description |\n|------|-------------|\n" + strings.Join(rows, "\n") + "\n\n"
}

func (fixture auditFixture) expectedReport(verbose bool, notNeeded bool) string {
	var builder strings.Builder
	builder.WriteString("[TOC]\n\n")
	builder.WriteString(titleTwo("Locales to remove from LanguageList.qml (translation level < 80%)"))
	builder.WriteString("* de_DE no translation at all\n\n")
	builder.WriteString("There is 1 locales above 80% translation: fr\n")
	builder.WriteString(titleTwo("Voices for the locales kept in LanguageList.qml"))
	if verbose {
		builder.WriteString("### We have voices for these locales:\n\n* fr\n")
	}
	builder.WriteString("\nWe miss voices for these locales:\n\n")
	builder.WriteString("\n")

	builder.WriteString(titleOne("en ()"))
	builder.WriteString(titleTwo("Intro (en/intro/)"))
	builder.WriteString(table("These files are missing", "| ball.ogg | Play with the ball |"))
	builder.WriteString("\n**ERROR: Missing resource file " + fixture.resourcePath("src/activities/gletters/resource/default-en.json") + "**\n\n")
	builder.WriteString(titleTwo("Misc (en/misc/)"))
	if verbose {
		builder.WriteString(table("These files are correct", "|click.ogg |  |"))
	}
	builder.WriteString("\n**ERROR: missing resource file " + fixture.resourcePath("src/activities/imageid/resource/content-en.json") + "**\n\n")

	builder.WriteString(titleOne("fr (French)"))
	builder.WriteString(titleTwo("Intro (fr/intro/)"))
	if verbose {
		builder.WriteString(table("These files are correct", "| ball.ogg | Play with the ball |"))
	}
	builder.WriteString(titleTwo("Letters (fr/alphabet/)"))
	builder.WriteString(table("These files are missing", "| U0063U0061U0074.ogg | cat |"))
	builder.WriteString(titleTwo("Misc (fr/misc/)"))
	builder.WriteString(table("These files are missing", "|click.ogg |  |"))
	builder.WriteString(titleTwo("Words (fr/words/)"))
	builder.WriteString(table("These files are missing", "|chat.ogg |  |"))
	if notNeeded {
		builder.WriteString(table("These files are not needed", "|chien.ogg |  |"))
	}

	return builder.String()
}
