package flags

import (
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultFirstChoice",
			defaultChoice:  "markdown",
			choices:        []string{"markdown", "yaml"},
			description:    "Report encoding",
			expectedOutput: "`<MARKDOWN|yaml>` Report encoding",
		},
		{
			name:           "DefaultSecondChoice",
			defaultChoice:  "fr",
			choices:        []string{"en", "fr"},
			description:    "Language of the report headings",
			expectedOutput: "`<en|FR>` Language of the report headings",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "yaml",
			choices:        []string{"markdown", "yaml"},
			description:    "",
			expectedOutput: "`<markdown|YAML>`",
		},
		{
			name:           "DuplicateChoicesIgnored",
			defaultChoice:  "en",
			choices:        []string{"en", "en", "fr", "fr"},
			description:    "Select a language.",
			expectedOutput: "`<EN|fr>` Select a language.",
		},
		{
			name:           "WhitespaceTrimmed",
			defaultChoice:  "markdown",
			choices:        []string{" markdown ", " yaml "},
			description:    "Pick an encoding.",
			expectedOutput: "`<MARKDOWN|yaml>` Pick an encoding.",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			actual := FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description)
			require.Equal(t, testCase.expectedOutput, actual)
		})
	}
}

func TestChoiceValueParsing(t *testing.T) {
	testCases := []struct {
		name          string
		arguments     []string
		expectedValue string
		expectError   bool
	}{
		{name: "default_kept", arguments: []string{}, expectedValue: "markdown"},
		{name: "valid_choice", arguments: []string{"--format", "yaml"}, expectedValue: "yaml"},
		{name: "case_insensitive", arguments: []string{"--format=YAML"}, expectedValue: "yaml"},
		{name: "invalid_choice", arguments: []string{"--format", "csv"}, expectError: true},
	}

	for testCaseIndex, testCase := range testCases {
		t.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(t *testing.T) {
			value := NewChoiceValue("Markdown", []string{"markdown", "yaml"})
			flagSet := pflag.NewFlagSet(testCase.name, pflag.ContinueOnError)
			flagSet.Var(value, "format", "Report encoding")

			parseError := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				require.Error(t, parseError)
				return
			}
			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedValue, value.String())
			require.Equal(t, "choice", value.Type())
		})
	}
}
