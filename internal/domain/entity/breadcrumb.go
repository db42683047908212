package entity

// FileEntry is a child of a directory as reported by the file-info collaborator.
type FileEntry struct {
	Name        string `json:"name"`
	IsDirectory bool   `json:"directory"`
	Location    string `json:"Location"`
}

// Hidden reports whether the entry is a dot file.
func (f FileEntry) Hidden() bool {
	return len(f.Name) > 0 && f.Name[0] == '.'
}

// MenuItem is a clickable link in a breadcrumb or history menu.
type MenuItem struct {
	Label string
	URL   string
}

// Breadcrumb is one path segment of the current location.
type Breadcrumb struct {
	Index int
	Label string
	Path  string     // Path up to and including this segment
	Menu  []MenuItem // Sibling files, empty for the leaf
}

// Breadcrumbs is the full render model for the current location.
type Breadcrumbs struct {
	FilePath string
	Crumbs   []Breadcrumb
	History  []MenuItem // Newest first
}
