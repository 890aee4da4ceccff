package sources

import (
	"bufio"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/temirov/voicecheck/internal/filesystem"
	"github.com/temirov/voicecheck/internal/inventory"
)

const (
	activitiesRelativePathConstant    = "src/activities"
	activityDescriptorNameConstant    = "ActivityInfo.qml"
	voiceFileExtensionConstant        = ".ogg"
	activityListErrorTemplateConstant = "unable to list activities in %s: %w"
)

var introDeclarationPattern = regexp.MustCompile(`.*intro:.*"(.*)"`)

// DefaultExcludedActivities lists activity directories that never carry an intro voice.
func DefaultExcludedActivities() []string {
	return []string{"template", "menu"}
}

// Scanner reads expected voice assets from a source tree.
type Scanner struct {
	fileSystem         filesystem.FileSystem
	sourceRoot         string
	excludedActivities map[string]struct{}
}

// NewScanner constructs a source scanner. A nil exclusion list applies DefaultExcludedActivities.
func NewScanner(fileSystem filesystem.FileSystem, sourceRoot string, excludedActivities []string) *Scanner {
	if excludedActivities == nil {
		excludedActivities = DefaultExcludedActivities()
	}
	excluded := make(map[string]struct{}, len(excludedActivities))
	for _, activity := range excludedActivities {
		excluded[activity] = struct{}{}
	}
	return &Scanner{
		fileSystem:         filesystem.Resolve(fileSystem),
		sourceRoot:         sourceRoot,
		excludedActivities: excluded,
	}
}

// IntroFiles returns <activity>.ogg for every activity that ships a descriptor.
func (scanner *Scanner) IntroFiles() (inventory.FileSet, error) {
	activities, listError := scanner.activities()
	if listError != nil {
		return nil, listError
	}

	introFiles := inventory.NewFileSet()
	for _, activity := range activities {
		descriptorFile, openError := scanner.fileSystem.Open(scanner.descriptorPath(activity))
		if openError != nil {
			continue
		}
		descriptorFile.Close()
		introFiles.Add(activity + voiceFileExtensionConstant)
	}
	return introFiles, nil
}

// IntroDescriptions records the intro text of every activity descriptor. A
// descriptor without an intro declaration produces a notice.
func (scanner *Scanner) IntroDescriptions(descriptions *inventory.Descriptions) ([]inventory.Notice, error) {
	activities, listError := scanner.activities()
	if listError != nil {
		return nil, listError
	}

	var notices []inventory.Notice
	for _, activity := range activities {
		introText, descriptorFound, introFound := scanner.introText(activity)
		if !descriptorFound {
			continue
		}
		introFileName := activity + voiceFileExtensionConstant
		if introFound {
			descriptions.Set(introFileName, introText)
		}
		if _, described := descriptions.Lookup(introFileName); !described {
			notices = append(notices, inventory.Notice{
				Kind: inventory.NoticeMissingIntroTag,
				Path: activity + "/" + activityDescriptorNameConstant,
			})
		}
	}
	return notices, nil
}

func (scanner *Scanner) introText(activity string) (string, bool, bool) {
	descriptorFile, openError := scanner.fileSystem.Open(scanner.descriptorPath(activity))
	if openError != nil {
		return "", false, false
	}
	defer descriptorFile.Close()

	lineScanner := bufio.NewScanner(descriptorFile)
	for lineScanner.Scan() {
		match := introDeclarationPattern.FindStringSubmatch(lineScanner.Text())
		if match != nil {
			return match[1], true, true
		}
	}
	return "", true, false
}

func (scanner *Scanner) activitiesDirectory() string {
	return filepath.Join(scanner.sourceRoot, filepath.FromSlash(activitiesRelativePathConstant))
}

func (scanner *Scanner) descriptorPath(activity string) string {
	return filepath.Join(scanner.activitiesDirectory(), activity, activityDescriptorNameConstant)
}

func (scanner *Scanner) activities() ([]string, error) {
	activitiesDirectory := scanner.activitiesDirectory()
	entries, readError := scanner.fileSystem.ReadDir(activitiesDirectory)
	if readError != nil {
		return nil, fmt.Errorf(activityListErrorTemplateConstant, activitiesDirectory, readError)
	}

	activities := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, excluded := scanner.excludedActivities[entry.Name()]; excluded {
			continue
		}
		if !filesystem.IsDirectory(scanner.fileSystem, filepath.Join(activitiesDirectory, entry.Name())) {
			continue
		}
		activities = append(activities, entry.Name())
	}
	sort.Strings(activities)
	return activities, nil
}
