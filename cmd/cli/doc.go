// Package cli constructs the voicecheck command-line interface, wiring the
// Cobra root command, configuration loader, and structured logging. The root
// command is the voice audit itself.
package cli
