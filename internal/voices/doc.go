// Package voices lists the voice asset tree: one directory per locale, each
// holding one directory per asset category.
package voices
