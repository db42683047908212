// Package filesystem answers file-info questions from a local directory tree.
package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"unicode/utf8"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/spf13/afero"
)

// sniffLen is how much of a file is inspected for binary content.
const sniffLen = 8000

// ErrIsDirectory is returned when a file operation targets a directory.
var ErrIsDirectory = errors.New("is a directory")

// Adapter implements port.FileInfo on top of an afero filesystem.
type Adapter struct {
	fs afero.Fs
}

var _ port.FileInfo = (*Adapter)(nil)

// New creates an adapter over fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *Adapter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Adapter{fs: fs}
}

// NewRooted serves paths relative to root, so "/src/a.go" maps to root/src/a.go.
func NewRooted(root string) *Adapter {
	return New(afero.NewBasePathFs(afero.NewOsFs(), root))
}

// IsBinary sniffs the head of the file for NUL bytes or invalid UTF-8.
func (a *Adapter) IsBinary(ctx context.Context, filePath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	f, err := a.fs.Open(filePath)
	if err != nil {
		return false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s: %w", filePath, ErrIsDirectory)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return looksBinary(head[:n], n == sniffLen), nil
}

func looksBinary(head []byte, truncated bool) bool {
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}
	if truncated {
		// A multi-byte rune may be cut at the sniff boundary.
		for i := 0; i < utf8.UTFMax && len(head) > 0 && !utf8.Valid(head); i++ {
			head = head[:len(head)-1]
		}
	}
	return !utf8.Valid(head)
}

// ListChildren lists dirPath. Locations are dirPath-joined child paths.
func (a *Adapter) ListChildren(ctx context.Context, dirPath string) ([]entity.FileEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	infos, err := afero.ReadDir(a.fs, dirPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("list %s: %w", dirPath, err)
		}
		return nil, err
	}

	out := make([]entity.FileEntry, 0, len(infos))
	for _, info := range infos {
		out = append(out, entity.FileEntry{
			Name:        info.Name(),
			IsDirectory: info.IsDir(),
			Location:    path.Join(dirPath, info.Name()),
		})
	}
	return out, nil
}

// ReadFile returns the contents of filePath.
func (a *Adapter) ReadFile(filePath string) (string, error) {
	data, err := afero.ReadFile(a.fs, filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
