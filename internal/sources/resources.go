package sources

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/temirov/voicecheck/internal/inventory"
)

const (
	wordsResourceTemplateConstant    = "src/activities/imageid/resource/content-%s.json"
	alphabetResourceTemplateConstant = "src/activities/gletters/resource/default-%s.json"
	codePointTokenTemplateConstant   = "U%04X"
)

type alphabetResource struct {
	Levels []alphabetLevel `json:"levels"`
}

type alphabetLevel struct {
	Words []string `json:"words"`
}

// WordsResourcePath returns the imageid word list of a locale.
func (scanner *Scanner) WordsResourcePath(locale string) string {
	return filepath.Join(scanner.sourceRoot, filepath.FromSlash(fmt.Sprintf(wordsResourceTemplateConstant, locale)))
}

// AlphabetResourcePath returns the gletters word list of a locale.
func (scanner *Scanner) AlphabetResourcePath(locale string) string {
	return filepath.Join(scanner.sourceRoot, filepath.FromSlash(fmt.Sprintf(alphabetResourceTemplateConstant, locale)))
}

// Words returns the expected word voices of a locale: the top-level keys of
// its imageid resource. An unreadable or malformed resource yields an empty
// set and a notice.
func (scanner *Scanner) Words(locale string) (inventory.FileSet, []inventory.Notice) {
	resourcePath := scanner.WordsResourcePath(locale)
	missingNotice := []inventory.Notice{{Kind: inventory.NoticeMissingWordsResource, Path: resourcePath}}

	resourceData, readError := scanner.fileSystem.ReadFile(resourcePath)
	if readError != nil {
		missingNotice[0].Reason = readError.Error()
		return inventory.NewFileSet(), missingNotice
	}

	var words map[string]json.RawMessage
	if decodeError := json.Unmarshal(resourceData, &words); decodeError != nil {
		missingNotice[0].Reason = decodeError.Error()
		return inventory.NewFileSet(), missingNotice
	}

	expected := inventory.NewFileSet()
	for word := range words {
		expected.Add(word)
	}
	return expected, nil
}

// Alphabet returns the expected letter voices of a locale. Every word of every
// gletters level is lower-cased and encoded as one U<hex> token per code point
// followed by .ogg; the lower-cased word is recorded as the file description.
func (scanner *Scanner) Alphabet(locale string, descriptions *inventory.Descriptions) (inventory.FileSet, []inventory.Notice) {
	resourcePath := scanner.AlphabetResourcePath(locale)
	missingNotice := []inventory.Notice{{Kind: inventory.NoticeMissingAlphabetResource, Path: resourcePath}}

	resourceData, readError := scanner.fileSystem.ReadFile(resourcePath)
	if readError != nil {
		missingNotice[0].Reason = readError.Error()
		return inventory.NewFileSet(), missingNotice
	}

	var resource alphabetResource
	if decodeError := json.Unmarshal(resourceData, &resource); decodeError != nil {
		missingNotice[0].Reason = decodeError.Error()
		return inventory.NewFileSet(), missingNotice
	}

	lowerCaser := cases.Lower(language.Und)
	letters := inventory.NewFileSet()
	for _, level := range resource.Levels {
		for _, word := range level.Words {
			lowered := lowerCaser.String(word)
			fileName := LetterFileName(lowered)
			letters.Add(fileName)
			descriptions.Set(fileName, lowered)
		}
	}
	return letters, nil
}

// LetterFileName encodes a word as its gletters voice file name, e.g. "ab" becomes U0061U0062.ogg.
func LetterFileName(word string) string {
	var builder strings.Builder
	for _, character := range word {
		builder.WriteString(fmt.Sprintf(codePointTokenTemplateConstant, character))
	}
	builder.WriteString(voiceFileExtensionConstant)
	return builder.String()
}
