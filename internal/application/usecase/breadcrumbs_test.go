package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/crumbtrail/internal/application/port/mocks"
	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/domain/entity"
)

func labels(items []entity.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestBreadcrumbsUseCase_BuildUnderRoot(t *testing.T) {
	ctx := testContext()
	files := portmocks.NewMockFileInfo(t)

	files.EXPECT().ListChildren(mock.Anything, "/project").Return([]entity.FileEntry{
		{Name: "src", IsDirectory: true},
		{Name: "README.md", Location: "/project/README.md"},
		{Name: ".gitignore"},
		{Name: "app.js"},
		{Name: "Build.sh"},
	}, nil)
	files.EXPECT().ListChildren(mock.Anything, "/project/src").Return([]entity.FileEntry{
		{Name: "b.js"},
		{Name: "a.js"},
	}, nil)

	uc := usecase.NewBreadcrumbsUseCase(files, "/project/", "/editor.html")
	history := []entity.HistoryEntry{
		historyEntry("/project/one.js", 0, 0),
		historyEntry("/project/two.js", 0, 0),
	}

	got := uc.Build(ctx, "/project/src/a.js", history)

	require.Len(t, got.Crumbs, 3)
	assert.Equal(t, "/project", got.Crumbs[0].Label)
	assert.Equal(t, "/project", got.Crumbs[0].Path)
	assert.Equal(t, "src", got.Crumbs[1].Label)
	assert.Equal(t, "/project/src", got.Crumbs[1].Path)
	assert.Equal(t, "a.js", got.Crumbs[2].Label)
	assert.Equal(t, "/project/src/a.js", got.Crumbs[2].Path)
	assert.Equal(t, 2, got.Crumbs[2].Index)

	assert.Equal(t, []string{"app.js", "Build.sh", "README.md"}, labels(got.Crumbs[0].Menu))
	assert.Equal(t, "/editor.html?/project/README.md", got.Crumbs[0].Menu[2].URL)
	assert.Equal(t, "/editor.html?/project/app.js", got.Crumbs[0].Menu[0].URL)
	assert.Equal(t, []string{"a.js", "b.js"}, labels(got.Crumbs[1].Menu))
	assert.Empty(t, got.Crumbs[2].Menu, "leaf has no menu")

	assert.Equal(t, []string{"two.js", "one.js"}, labels(got.History), "history menu is newest first")
}

func TestBreadcrumbsUseCase_OutsideRootSplitsFromSlash(t *testing.T) {
	ctx := testContext()
	files := portmocks.NewMockFileInfo(t)
	files.EXPECT().ListChildren(mock.Anything, "/").Return(nil, nil)
	files.EXPECT().ListChildren(mock.Anything, "/tmp").Return([]entity.FileEntry{{Name: "x.txt"}}, nil)

	uc := usecase.NewBreadcrumbsUseCase(files, "/project", "/")
	got := uc.Build(ctx, "/tmp/x.txt", nil)

	require.Len(t, got.Crumbs, 3)
	assert.Equal(t, []string{"/", "tmp", "x.txt"}, []string{got.Crumbs[0].Label, got.Crumbs[1].Label, got.Crumbs[2].Label})
	assert.Equal(t, "/tmp/x.txt", got.Crumbs[2].Path)
	assert.Equal(t, []string{"x.txt"}, labels(got.Crumbs[1].Menu))
	assert.NotNil(t, got.History)
	assert.Empty(t, got.History)
}

func TestBreadcrumbsUseCase_ListingFailureLeavesCrumbWithoutMenu(t *testing.T) {
	ctx := testContext()
	files := portmocks.NewMockFileInfo(t)
	files.EXPECT().ListChildren(mock.Anything, "/project").Return(nil, errors.New("connection refused"))
	files.EXPECT().ListChildren(mock.Anything, "/project/src").Return([]entity.FileEntry{{Name: "a.js"}}, nil)

	uc := usecase.NewBreadcrumbsUseCase(files, "/project", "/")
	got := uc.Build(ctx, "/project/src/a.js", nil)

	require.Len(t, got.Crumbs, 3)
	assert.Empty(t, got.Crumbs[0].Menu)
	assert.Equal(t, []string{"a.js"}, labels(got.Crumbs[1].Menu))
}

func TestBreadcrumbsUseCase_WithoutFileInfo(t *testing.T) {
	uc := usecase.NewBreadcrumbsUseCase(nil, "/project", "")
	got := uc.Build(testContext(), "/project/a.js", nil)

	require.Len(t, got.Crumbs, 2)
	assert.Empty(t, got.Crumbs[0].Menu)
	assert.Empty(t, uc.Build(testContext(), "", nil).Crumbs)
}
