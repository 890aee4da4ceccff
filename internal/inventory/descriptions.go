package inventory

// Descriptions maps asset file names to human-readable descriptions.
//
// Scanners record entries while discovering expected files and the reporter
// consults them when rendering tables. A single instance is shared for a whole
// run, so entries recorded for one locale remain visible to the next.
type Descriptions struct {
	entries map[string]string
}

// NewDescriptions constructs an empty description context.
func NewDescriptions() *Descriptions {
	return &Descriptions{entries: make(map[string]string)}
}

// Set records or replaces the description of a file.
func (descriptions *Descriptions) Set(fileName string, description string) {
	if descriptions == nil {
		return
	}
	if descriptions.entries == nil {
		descriptions.entries = make(map[string]string)
	}
	descriptions.entries[fileName] = description
}

// Lookup returns the description of a file and whether one was recorded.
func (descriptions *Descriptions) Lookup(fileName string) (string, bool) {
	if descriptions == nil {
		return "", false
	}
	description, exists := descriptions.entries[fileName]
	return description, exists
}

// Len reports the number of recorded descriptions.
func (descriptions *Descriptions) Len() int {
	if descriptions == nil {
		return 0
	}
	return len(descriptions.entries)
}
