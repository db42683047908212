package filesystem_test

import (
	"context"
	"strings"
	"testing"

	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/infrastructure/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T, files map[string]string) *filesystem.Adapter {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return filesystem.New(fs)
}

func TestAdapter_IsBinary(t *testing.T) {
	a := newAdapter(t, map[string]string{
		"/p/main.go":   "package main\n",
		"/p/utf8.txt":  "héllo wörld",
		"/p/logo.png":  "\x89PNG\r\n\x1a\n\x00\x00",
		"/p/latin1":    "caf\xe9",
		"/p/empty.txt": "",
		"/p/long.txt":  strings.Repeat("é", 5000),
	})

	tests := []struct {
		path string
		want bool
	}{
		{"/p/main.go", false},
		{"/p/utf8.txt", false},
		{"/p/logo.png", true},
		{"/p/latin1", true},
		{"/p/empty.txt", false},
		{"/p/long.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := a.IsBinary(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdapter_IsBinary_Errors(t *testing.T) {
	a := newAdapter(t, map[string]string{"/p/main.go": "x"})

	_, err := a.IsBinary(context.Background(), "/p/missing.go")
	assert.Error(t, err)

	_, err = a.IsBinary(context.Background(), "/p")
	assert.ErrorIs(t, err, filesystem.ErrIsDirectory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.IsBinary(ctx, "/p/main.go")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAdapter_ListChildren(t *testing.T) {
	a := newAdapter(t, map[string]string{
		"/p/b.go":      "",
		"/p/.hidden":   "",
		"/p/lib/x.go":  "",
		"/p/README.md": "",
	})

	kids, err := a.ListChildren(context.Background(), "/p")

	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.FileEntry{
		{Name: ".hidden", Location: "/p/.hidden"},
		{Name: "README.md", Location: "/p/README.md"},
		{Name: "b.go", Location: "/p/b.go"},
		{Name: "lib", IsDirectory: true, Location: "/p/lib"},
	}, kids)
}

func TestAdapter_ListChildren_Missing(t *testing.T) {
	a := newAdapter(t, nil)

	_, err := a.ListChildren(context.Background(), "/nope")

	assert.Error(t, err)
}

func TestAdapter_ReadFile(t *testing.T) {
	a := newAdapter(t, map[string]string{"/p/a.txt": "hello"})

	got, err := a.ReadFile("/p/a.txt")

	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}
