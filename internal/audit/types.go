package audit

import "github.com/temirov/voicecheck/internal/report"

// CommandOptions captures the configurable parameters for one audit run.
type CommandOptions struct {
	SourceRoot         string
	VoicesRoot         string
	Verbose            bool
	NotNeeded          bool
	Format             report.Format
	ReportLanguage     string
	ExcludedActivities []string
	IgnoredFiles       []string
}

func (options CommandOptions) renderOptions() report.RenderOptions {
	return report.RenderOptions{
		Verbose:   options.Verbose,
		NotNeeded: options.NotNeeded,
		Language:  options.ReportLanguage,
	}
}
