// Package catalogs reads the translation side of the audited source tree: the
// gettext catalogs under po/ and the locale declarations of LanguageList.qml.
// It computes per-locale completeness and decides which configured locales
// fall below the translation threshold.
package catalogs
