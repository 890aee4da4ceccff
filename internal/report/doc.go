// Package report models the outcome of a voice audit and renders it either as
// the markdown document consumed by the project web page or as a YAML summary.
//
// Headings and fixed sentences are looked up in embedded go-i18n catalogs so
// the markdown can be produced in several languages; English is the default.
package report
