package utils_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/voicecheck/internal/utils"
)

const (
	testEnvironmentPrefixConstant                  = "TESTVOICECHECK"
	testLogLevelKeyConstant                        = "common.log_level"
	testIgnoredFilesKeyConstant                    = "tools.voices.ignored_files"
	testLogLevelEnvironmentVariableConstant        = testEnvironmentPrefixConstant + "_COMMON_LOG_LEVEL"
	testIgnoredFilesEnvironmentVariableConstant    = testEnvironmentPrefixConstant + "_TOOLS_VOICES_IGNORED_FILES"
	testDefaultLogLevelConstant                    = "info"
	testEmbeddedLogLevelConstant                   = "debug"
	testFileLogLevelConstant                       = "warn"
	testEnvironmentLogLevelConstant                = "error"
	testConfigFileNameConstant                     = "config.yaml"
	testEnvironmentFileNameConstant                = ".env"
	testConfigContentTemplateConstant              = "common:\n  log_level: %s\n"
	testConfigurationNameConstant                  = "config"
	testConfigurationTypeConstant                  = "yaml"
	testUserConfigurationDirectoryNameConstant     = ".voicecheck"
	configurationLoaderSubtestNameTemplateConstant = "%d_%s"
)

type configurationFixture struct {
	Common configurationCommonFixture `mapstructure:"common"`
	Tools  configurationToolsFixture  `mapstructure:"tools"`
}

type configurationCommonFixture struct {
	LogLevel string `mapstructure:"log_level"`
}

type configurationToolsFixture struct {
	Voices configurationVoicesFixture `mapstructure:"voices"`
}

type configurationVoicesFixture struct {
	IgnoredFiles []string `mapstructure:"ignored_files"`
}

func defaultFixtureValues() map[string]any {
	return map[string]any{
		testLogLevelKeyConstant:     testDefaultLogLevelConstant,
		testIgnoredFilesKeyConstant: []string{"README"},
	}
}

func TestConfigurationLoaderLoadConfiguration(testInstance *testing.T) {
	testCases := []struct {
		name                 string
		embeddedLogLevel     string
		fileLogLevel         string
		environmentLogLevel  string
		environmentFileLines string
		expectedLogLevel     string
	}{
		{
			name:             "embedded_configuration_merges",
			embeddedLogLevel: testEmbeddedLogLevelConstant,
			expectedLogLevel: testEmbeddedLogLevelConstant,
		},
		{
			name:             "defaults_are_applied",
			expectedLogLevel: testDefaultLogLevelConstant,
		},
		{
			name:             "file_overrides_embedded",
			embeddedLogLevel: testEmbeddedLogLevelConstant,
			fileLogLevel:     testFileLogLevelConstant,
			expectedLogLevel: testFileLogLevelConstant,
		},
		{
			name:                "environment_overrides_file",
			fileLogLevel:        testFileLogLevelConstant,
			environmentLogLevel: testEnvironmentLogLevelConstant,
			expectedLogLevel:    testEnvironmentLogLevelConstant,
		},
		{
			name:                 "environment_file_overrides_file",
			fileLogLevel:         testFileLogLevelConstant,
			environmentFileLines: testLogLevelEnvironmentVariableConstant + "=" + testEnvironmentLogLevelConstant + "\n",
			expectedLogLevel:     testEnvironmentLogLevelConstant,
		},
		{
			name:                 "process_environment_wins_over_environment_file",
			environmentLogLevel:  testFileLogLevelConstant,
			environmentFileLines: testLogLevelEnvironmentVariableConstant + "=" + testEnvironmentLogLevelConstant + "\n",
			expectedLogLevel:     testFileLogLevelConstant,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(configurationLoaderSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			tempDirectory := testInstance.TempDir()
			configurationFilePath := ""
			if len(testCase.fileLogLevel) > 0 {
				configurationFilePath = filepath.Join(tempDirectory, testConfigFileNameConstant)
				configurationContent := fmt.Sprintf(testConfigContentTemplateConstant, testCase.fileLogLevel)
				require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(configurationContent), 0o600))
			}

			if len(testCase.environmentLogLevel) > 0 {
				testInstance.Setenv(testLogLevelEnvironmentVariableConstant, testCase.environmentLogLevel)
			} else {
				testInstance.Setenv(testLogLevelEnvironmentVariableConstant, "")
				require.NoError(testInstance, os.Unsetenv(testLogLevelEnvironmentVariableConstant))
			}

			configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{tempDirectory})
			if len(testCase.embeddedLogLevel) > 0 {
				configurationLoader.SetEmbeddedConfiguration([]byte(fmt.Sprintf(testConfigContentTemplateConstant, testCase.embeddedLogLevel)), testConfigurationTypeConstant)
			}
			if len(testCase.environmentFileLines) > 0 {
				environmentFilePath := filepath.Join(tempDirectory, testEnvironmentFileNameConstant)
				require.NoError(testInstance, os.WriteFile(environmentFilePath, []byte(testCase.environmentFileLines), 0o600))
				configurationLoader.SetEnvironmentFiles(environmentFilePath)
			}

			loadedConfiguration := configurationFixture{}
			metadata, loadError := configurationLoader.LoadConfiguration(configurationFilePath, defaultFixtureValues(), &loadedConfiguration)
			require.NoError(testInstance, loadError)
			require.Equal(testInstance, testCase.expectedLogLevel, loadedConfiguration.Common.LogLevel)

			if len(configurationFilePath) > 0 {
				require.Equal(testInstance, configurationFilePath, metadata.ConfigFileUsed)
			} else {
				require.Empty(testInstance, metadata.ConfigFileUsed)
			}
		})
	}
}

func TestConfigurationLoaderDecodesListsFromEnvironment(testInstance *testing.T) {
	testInstance.Setenv(testIgnoredFilesEnvironmentVariableConstant, "README,LICENSE")

	configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{testInstance.TempDir()})

	loadedConfiguration := configurationFixture{}
	_, loadError := configurationLoader.LoadConfiguration("", defaultFixtureValues(), &loadedConfiguration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, []string{"README", "LICENSE"}, loadedConfiguration.Tools.Voices.IgnoredFiles)
}

func TestConfigurationLoaderSkipsMissingEnvironmentFile(testInstance *testing.T) {
	configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{testInstance.TempDir()})
	configurationLoader.SetEnvironmentFiles(filepath.Join(testInstance.TempDir(), testEnvironmentFileNameConstant), " ")

	loadedConfiguration := configurationFixture{}
	_, loadError := configurationLoader.LoadConfiguration("", defaultFixtureValues(), &loadedConfiguration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, []string{"README"}, loadedConfiguration.Tools.Voices.IgnoredFiles)
}

func TestConfigurationLoaderRejectsMalformedFile(testInstance *testing.T) {
	configurationFilePath := filepath.Join(testInstance.TempDir(), testConfigFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte("common: [unterminated\n"), 0o600))

	configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)
	loadedConfiguration := configurationFixture{}
	_, loadError := configurationLoader.LoadConfiguration(configurationFilePath, defaultFixtureValues(), &loadedConfiguration)
	require.Error(testInstance, loadError)
}

func TestConfigurationLoaderSearchPaths(testInstance *testing.T) {
	testCases := []struct {
		name                         string
		configurationDirectorySelect func(workingDirectoryPath string, userConfigurationDirectoryPath string) string
	}{
		{
			name: "searches_working_directory",
			configurationDirectorySelect: func(workingDirectoryPath string, userConfigurationDirectoryPath string) string {
				return workingDirectoryPath
			},
		},
		{
			name: "searches_user_configuration_directory",
			configurationDirectorySelect: func(workingDirectoryPath string, userConfigurationDirectoryPath string) string {
				return userConfigurationDirectoryPath
			},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(configurationLoaderSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			workingDirectoryPath := testInstance.TempDir()
			userConfigurationDirectoryPath := filepath.Join(testInstance.TempDir(), testUserConfigurationDirectoryNameConstant)
			require.NoError(testInstance, os.MkdirAll(userConfigurationDirectoryPath, 0o755))

			configurationFilePath := filepath.Join(testCase.configurationDirectorySelect(workingDirectoryPath, userConfigurationDirectoryPath), testConfigFileNameConstant)
			configurationContent := fmt.Sprintf(testConfigContentTemplateConstant, testFileLogLevelConstant)
			require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(configurationContent), 0o600))

			configurationLoader := utils.NewConfigurationLoader(
				testConfigurationNameConstant,
				testConfigurationTypeConstant,
				testEnvironmentPrefixConstant,
				[]string{workingDirectoryPath, userConfigurationDirectoryPath},
			)

			loadedConfiguration := configurationFixture{}
			metadata, loadError := configurationLoader.LoadConfiguration("", defaultFixtureValues(), &loadedConfiguration)
			require.NoError(testInstance, loadError)
			require.Equal(testInstance, testFileLogLevelConstant, loadedConfiguration.Common.LogLevel)
			require.Equal(testInstance, configurationFilePath, metadata.ConfigFileUsed)
		})
	}
}
