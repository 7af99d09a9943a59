package model

// PathEntry represents a single child of a listed directory.
type PathEntry struct {
	Name     string // Plain child name
	Label    string // Display label (directories are emphasized)
	FullPath string // Directory joined with the child name
	IsDir    bool   // True if the entry is not a regular file
}

// SearchMatch is a single matching line produced by a search.
type SearchMatch struct {
	LineNumber int    // 1-based line number in the searched text
	Rendered   string // Prefix plus the line with the first match emphasized
}
