// Package inventory defines the asset categories, file sets, and description
// context shared by the voicecheck scanners, together with the set arithmetic
// used to compare expected assets against the files present on disk.
package inventory
