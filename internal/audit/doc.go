// Package audit drives the voice coverage audit of a source tree.
//
// It exposes CommandBuilder for wiring the Cobra command and Service for running
// the scan and report pipeline programmatically.
package audit
