// Package filesystem abstracts the read-only filesystem access performed by the
// voicecheck scanners so tests can substitute their own implementation.
package filesystem
