package usecase

import (
	"context"
	"path"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/deeplink"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

// maxConcurrentListings bounds parallel directory listings per build.
const maxConcurrentListings = 4

// BreadcrumbsUseCase builds the breadcrumb and history menu model for a file.
type BreadcrumbsUseCase struct {
	files    port.FileInfo
	root     string
	basePath string
}

// NewBreadcrumbsUseCase creates a breadcrumb builder.
// Paths outside root are split from the filesystem root.
func NewBreadcrumbsUseCase(files port.FileInfo, root, basePath string) *BreadcrumbsUseCase {
	if basePath == "" {
		basePath = deeplink.DefaultBasePath
	}
	return &BreadcrumbsUseCase{
		files:    files,
		root:     strings.TrimSuffix(root, "/"),
		basePath: basePath,
	}
}

// Build returns the breadcrumbs for filePath. history is the stored list,
// oldest first; the resulting history menu is newest first.
//
// Each non-leaf crumb gets a menu of the visible files in its directory.
// A failed listing leaves that crumb without a menu.
func (uc *BreadcrumbsUseCase) Build(ctx context.Context, filePath string, history []entity.HistoryEntry) entity.Breadcrumbs {
	log := logging.FromContext(ctx)

	crumbs := uc.split(filePath)

	if uc.files != nil && len(crumbs) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxConcurrentListings)
		for i := 0; i < len(crumbs)-1; i++ {
			g.Go(func() error {
				children, err := uc.files.ListChildren(gctx, crumbs[i].Path)
				if err != nil {
					log.Warn().Err(err).Str("dir", crumbs[i].Path).Msg("failed to list breadcrumb directory")
					return nil
				}
				crumbs[i].Menu = uc.menuFor(crumbs[i].Path, children)
				return nil
			})
		}
		_ = g.Wait()
	}

	return entity.Breadcrumbs{
		FilePath: filePath,
		Crumbs:   crumbs,
		History:  HistoryMenu(history),
	}
}

// HistoryMenu returns the history menu items for a stored list, newest first.
func HistoryMenu(history []entity.HistoryEntry) []entity.MenuItem {
	menu := make([]entity.MenuItem, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		menu = append(menu, entity.MenuItem{
			Label: history[i].DisplayName,
			URL:   history[i].URL,
		})
	}
	return menu
}

func (uc *BreadcrumbsUseCase) split(filePath string) []entity.Breadcrumb {
	if filePath == "" {
		return nil
	}

	root := uc.root
	rest := ""
	switch {
	case root != "" && strings.HasPrefix(filePath, root+"/"):
		rest = filePath[len(root)+1:]
	case root != "" && filePath == root:
	default:
		root = "/"
		rest = strings.TrimPrefix(filePath, "/")
	}

	crumbs := []entity.Breadcrumb{{Index: 0, Label: root, Path: root}}
	current := root
	for _, seg := range strings.Split(rest, "/") {
		if seg == "" {
			continue
		}
		current = path.Join(current, seg)
		crumbs = append(crumbs, entity.Breadcrumb{
			Index: len(crumbs),
			Label: seg,
			Path:  current,
		})
	}
	return crumbs
}

func (uc *BreadcrumbsUseCase) menuFor(dir string, children []entity.FileEntry) []entity.MenuItem {
	files := make([]entity.FileEntry, 0, len(children))
	for _, c := range children {
		if c.IsDirectory || c.Hidden() {
			continue
		}
		files = append(files, c)
	}
	sort.SliceStable(files, func(i, j int) bool {
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})

	items := make([]entity.MenuItem, 0, len(files))
	for _, f := range files {
		loc := f.Location
		if loc == "" {
			loc = path.Join(dir, f.Name)
		}
		items = append(items, entity.MenuItem{
			Label: f.Name,
			URL:   deeplink.Format(uc.basePath, loc, nil),
		})
	}
	return items
}
