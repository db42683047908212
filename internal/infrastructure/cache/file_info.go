package cache

import (
	"context"
	"time"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

const (
	// DefaultBinaryCacheSize bounds how many binary-check answers are kept.
	DefaultBinaryCacheSize = 256
	// DefaultBinaryCacheTTL is how long a binary-check answer stays valid.
	DefaultBinaryCacheTTL = 30 * time.Second
)

// FileInfo wraps a port.FileInfo and remembers IsBinary answers per path.
// Directory listings always go to the wrapped source.
type FileInfo struct {
	next   port.FileInfo
	binary port.Cache[string, bool]
}

var _ port.FileInfo = (*FileInfo)(nil)

// NewFileInfo decorates next with a binary-check cache.
func NewFileInfo(next port.FileInfo, size int, ttl time.Duration) *FileInfo {
	return &FileInfo{
		next:   next,
		binary: NewLRU[string, bool](size, ttl),
	}
}

// IsBinary returns a cached answer when one is live. Errors are never cached.
func (f *FileInfo) IsBinary(ctx context.Context, filePath string) (bool, error) {
	if binary, ok := f.binary.Get(filePath); ok {
		logging.FromContext(ctx).Trace().Str("file", filePath).Bool("binary", binary).Msg("binary check cache hit")
		return binary, nil
	}

	binary, err := f.next.IsBinary(ctx, filePath)
	if err != nil {
		return binary, err
	}
	f.binary.Set(filePath, binary)
	return binary, nil
}

// ListChildren delegates to the wrapped source.
func (f *FileInfo) ListChildren(ctx context.Context, dirPath string) ([]entity.FileEntry, error) {
	return f.next.ListChildren(ctx, dirPath)
}

// Forget drops the cached answer for filePath, e.g. after the file was rewritten.
func (f *FileInfo) Forget(filePath string) {
	f.binary.Remove(filePath)
}
