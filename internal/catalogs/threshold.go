package catalogs

import "sort"

// LocaleThreshold is the completeness ratio a configured locale must reach to stay listed.
const LocaleThreshold = 0.8

// RemovalCandidate is a configured locale whose translation is too incomplete.
type RemovalCandidate struct {
	Locale        string `yaml:"locale"`
	NoTranslation bool   `yaml:"no_translation"`
}

// LocaleEvaluation separates configured locales into kept and removable ones.
type LocaleEvaluation struct {
	Good              []string           `yaml:"good"`
	RemovalCandidates []RemovalCandidate `yaml:"removal_candidates"`
}

// EvaluateLocaleConfiguration checks each configured locale against the
// threshold. A locale without statistics is retried with its region stripped;
// a good locale found that way is reported under its shortened code.
func EvaluateLocaleConfiguration(statuses map[string]TranslationStatus, configuredLocales []string) LocaleEvaluation {
	sortedLocales := append([]string{}, configuredLocales...)
	sort.Strings(sortedLocales)

	evaluation := LocaleEvaluation{
		Good:              []string{},
		RemovalCandidates: []RemovalCandidate{},
	}

	for _, locale := range sortedLocales {
		matchedLocale := locale
		status, found := statuses[locale]
		if !found {
			matchedLocale = ShortLocale(locale)
			status, found = statuses[matchedLocale]
		}

		switch {
		case !found:
			evaluation.RemovalCandidates = append(evaluation.RemovalCandidates, RemovalCandidate{Locale: locale, NoTranslation: true})
		case status.Percent < LocaleThreshold:
			evaluation.RemovalCandidates = append(evaluation.RemovalCandidates, RemovalCandidate{Locale: locale})
		default:
			evaluation.Good = append(evaluation.Good, matchedLocale)
		}
	}

	return evaluation
}
