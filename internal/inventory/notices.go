package inventory

// NoticeKind identifies a recoverable problem surfaced inline in the report.
type NoticeKind string

// Notice kinds raised by the scanners.
const (
	NoticeLanguageListUnreadable  NoticeKind = "language_list_unreadable"
	NoticeMissingIntroTag         NoticeKind = "missing_intro_tag"
	NoticeMissingWordsResource    NoticeKind = "missing_words_resource"
	NoticeMissingAlphabetResource NoticeKind = "missing_alphabet_resource"
)

// Notice describes a recoverable scan problem. The scan that raised it
// degraded to an empty or partial result.
type Notice struct {
	Kind   NoticeKind `yaml:"kind"`
	Path   string     `yaml:"path"`
	Reason string     `yaml:"reason,omitempty"`
}
