package entity

import "path"

// Selection is a character-offset range inside a file.
type Selection struct {
	Start int
	End   int
}

// NewSelection creates a selection from two offsets.
func NewSelection(start, end int) *Selection {
	return &Selection{Start: start, End: end}
}

// Valid reports whether both endpoints are usable offsets.
func (s *Selection) Valid() bool {
	return s != nil && s.Start >= 0 && s.End >= 0
}

// Location identifies a point in a file an editor can be opened at.
type Location struct {
	FilePath       string
	Selection      *Selection // nil when no selection is known
	ScrollPosition int
}

// DisplayName returns the base name of the file.
func (l Location) DisplayName() string {
	return DisplayName(l.FilePath)
}

// DisplayName returns the last path segment of filePath.
func DisplayName(filePath string) string {
	if filePath == "" {
		return ""
	}
	return path.Base(filePath)
}
