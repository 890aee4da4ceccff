// Package utils exposes reusable helpers consumed by the voicecheck CLI.
//
// It houses ConfigurationLoader (Viper, dotenv files, environment variables)
// and LoggerFactory (zap) abstractions together with the command context
// accessor.
package utils
