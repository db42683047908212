package port

import (
	"context"

	"github.com/bnema/crumbtrail/internal/domain/entity"
)

// FileInfo answers questions about files served to the editor.
type FileInfo interface {
	// IsBinary reports whether the file cannot be opened as text.
	IsBinary(ctx context.Context, filePath string) (bool, error)
	// ListChildren lists the entries of a directory.
	ListChildren(ctx context.Context, dirPath string) ([]entity.FileEntry, error)
}
