package inventory

import "sort"

// Category enumerates the voice asset families audited per locale.
type Category string

// Supported categories. The value doubles as the directory name under a locale.
const (
	CategoryIntro     Category = "intro"
	CategoryAlphabet  Category = "alphabet"
	CategoryMisc      Category = "misc"
	CategoryColors    Category = "colors"
	CategoryGeography Category = "geography"
	CategoryWords     Category = "words"
)

// Categories returns the categories in report order.
func Categories() []Category {
	return []Category{
		CategoryIntro,
		CategoryAlphabet,
		CategoryMisc,
		CategoryColors,
		CategoryGeography,
		CategoryWords,
	}
}

// FileSet holds unique asset file names.
type FileSet map[string]struct{}

// NewFileSet builds a set from the provided names.
func NewFileSet(names ...string) FileSet {
	set := make(FileSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Add inserts a name into the set.
func (set FileSet) Add(name string) {
	set[name] = struct{}{}
}

// Contains reports whether the name is present.
func (set FileSet) Contains(name string) bool {
	_, exists := set[name]
	return exists
}

// Union returns a new set with the members of both sets.
func (set FileSet) Union(other FileSet) FileSet {
	union := make(FileSet, len(set)+len(other))
	for name := range set {
		union[name] = struct{}{}
	}
	for name := range other {
		union[name] = struct{}{}
	}
	return union
}

// Sorted returns the members in lexicographic order.
func (set FileSet) Sorted() []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
