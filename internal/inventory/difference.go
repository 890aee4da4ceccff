package inventory

// Difference captures the comparison between expected and actual file sets.
type Difference struct {
	Matched    []string
	Missing    []string
	Extraneous []string
}

// Diff compares expected files against the files present on disk. Every slice
// of the result is sorted lexicographically.
func Diff(expected FileSet, actual FileSet) Difference {
	matched := NewFileSet()
	missing := NewFileSet()
	extraneous := NewFileSet()

	for name := range expected {
		if actual.Contains(name) {
			matched.Add(name)
			continue
		}
		missing.Add(name)
	}

	for name := range actual {
		if !expected.Contains(name) {
			extraneous.Add(name)
		}
	}

	return Difference{
		Matched:    matched.Sorted(),
		Missing:    missing.Sorted(),
		Extraneous: extraneous.Sorted(),
	}
}

// Empty reports whether neither side of the comparison had any file.
func (difference Difference) Empty() bool {
	return len(difference.Matched) == 0 && len(difference.Missing) == 0 && len(difference.Extraneous) == 0
}
